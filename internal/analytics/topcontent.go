// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"sort"
	"time"

	"github.com/tomtom215/backlot/internal/models"
)

// RankTopContent aggregates view counts per distinct item across the raw
// events of a window and returns the top entries.
//
// It works on raw events rather than daily buckets because cross-day
// totals per item are needed. When an item's events disagree on title or
// page type (a renamed film, say), the latest event's values win.
//
// Ordering is count descending with itemId-ascending tie-breaks, so the
// ranking is deterministic for a fixed event snapshot. The result is
// truncated to limit entries; a non-positive limit returns the full
// ranking.
func RankTopContent(events []models.PageViewEvent, limit int) []models.TopContentEntry {
	type itemAgg struct {
		entry  models.TopContentEntry
		latest time.Time
	}

	items := make(map[string]*itemAgg)
	for _, event := range events {
		agg, ok := items[event.ItemID]
		if !ok {
			agg = &itemAgg{
				entry: models.TopContentEntry{
					ItemID:   event.ItemID,
					Title:    event.Title,
					PageType: event.PageType,
				},
				latest: event.Timestamp,
			}
			items[event.ItemID] = agg
		}

		agg.entry.Count++
		if !event.Timestamp.Before(agg.latest) {
			agg.latest = event.Timestamp
			agg.entry.Title = event.Title
			agg.entry.PageType = event.PageType
		}
	}

	ranked := make([]models.TopContentEntry, 0, len(items))
	for _, agg := range items {
		ranked = append(ranked, agg.entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ItemID < ranked[j].ItemID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
