// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package models

import "time"

// PageType classifies which kind of console page a visitor viewed.
type PageType string

// Page types tracked by the console. Pages that are not film, story, or
// production detail pages (home, search, about) are recorded as "other".
const (
	PageTypeFilm       PageType = "film"
	PageTypeStory      PageType = "story"
	PageTypeProduction PageType = "production"
	PageTypeOther      PageType = "other"
)

// Valid reports whether pt is one of the known page types.
func (pt PageType) Valid() bool {
	switch pt {
	case PageTypeFilm, PageTypeStory, PageTypeProduction, PageTypeOther:
		return true
	default:
		return false
	}
}

// ParsePageType converts a string to a PageType, returning ok=false for
// unknown values. The empty string is not a valid page type; callers that
// treat "" as "no filter" must check before parsing.
func ParsePageType(s string) (PageType, bool) {
	pt := PageType(s)
	return pt, pt.Valid()
}

// PageViewEvent is a single raw page-view record as stored by the event
// store. Events are immutable once ingested; the analytics engine treats
// them as read-only input.
//
// SessionSeconds is the visitor's session duration measured by the tracking
// beacon at the time of the view. Bounced marks single-page sessions.
type PageViewEvent struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	PageType       PageType  `json:"page_type"`
	ItemID         string    `json:"item_id"`
	Title          string    `json:"title"`
	VisitorID      string    `json:"visitor_id"`
	IsNewVisitor   bool      `json:"is_new_visitor"`
	SessionSeconds float64   `json:"session_seconds"`
	Bounced        bool      `json:"bounced"`
}
