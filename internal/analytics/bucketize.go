// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"fmt"
	"time"

	"github.com/tomtom215/backlot/internal/models"
)

// DayBucket holds the raw events that fall on a single calendar day.
type DayBucket struct {
	// Date is the start-of-day instant for the bucket's calendar day.
	Date time.Time

	Events []models.PageViewEvent
}

// BucketizeDaily groups events into one bucket per calendar day across the
// window, in ascending date order. The window bounds are supplied
// explicitly rather than inferred from event timestamps because days with
// no events must still appear as empty buckets.
//
// Day membership uses half-open day intervals in loc: an event at exactly
// midnight belongs to the day that starts there. Events whose timestamps
// fall outside the window are ignored; the event-source contract already
// promises in-range results, and stray rows must not create extra buckets.
//
// The returned slice always has exactly (end-start).days+1 entries.
// Returns ErrInvalidRange when the window end precedes its start.
func BucketizeDaily(events []models.PageViewEvent, w Window, loc *time.Location) ([]DayBucket, error) {
	if w.End.Before(w.Start) {
		return nil, fmt.Errorf("%w: window end %s before start %s",
			ErrInvalidRange, w.End.Format(dateFormat), w.Start.Format(dateFormat))
	}

	buckets := make([]DayBucket, 0, w.Days())
	index := make(map[string]int, w.Days())

	for day := startOfDay(w.Start, loc); !day.After(w.End); day = day.AddDate(0, 0, 1) {
		index[day.Format(dateFormat)] = len(buckets)
		buckets = append(buckets, DayBucket{Date: day})
	}

	for _, event := range events {
		key := event.Timestamp.In(loc).Format(dateFormat)
		if i, ok := index[key]; ok {
			buckets[i].Events = append(buckets[i].Events, event)
		}
	}

	return buckets, nil
}
