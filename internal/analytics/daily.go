// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"github.com/tomtom215/backlot/internal/models"
)

// ComputeDailyStat reduces one day bucket to its DailyStat.
//
// All ratio fields guard the zero-denominator case and return 0: an empty
// day yields all-zero counters and rates, never NaN.
func ComputeDailyStat(bucket DayBucket) models.DailyStat {
	stat := models.DailyStat{
		Date:      bucket.Date.Format(dateFormat),
		PageViews: len(bucket.Events),
	}

	if len(bucket.Events) == 0 {
		return stat
	}

	visitors := make(map[string]bool, len(bucket.Events))
	newVisitors := make(map[string]bool)
	bounced := 0
	sessionTotal := 0.0

	for _, event := range bucket.Events {
		visitors[event.VisitorID] = true
		if event.IsNewVisitor {
			newVisitors[event.VisitorID] = true
		}
		if event.Bounced {
			bounced++
		}
		sessionTotal += event.SessionSeconds

		switch event.PageType {
		case models.PageTypeFilm:
			stat.FilmViews++
		case models.PageTypeStory:
			stat.StoryViews++
		case models.PageTypeProduction:
			stat.ProductionViews++
		}
	}

	stat.UniqueVisitors = len(visitors)
	stat.NewVisitors = len(newVisitors)
	stat.AvgTimeOnSite = sessionTotal / float64(len(bucket.Events))
	stat.BounceRate = float64(bounced) / float64(len(bucket.Events)) * 100.0

	return stat
}

// ComputeDailyStats maps a bucket series to its DailyStat series,
// preserving order. The result has exactly one entry per bucket.
func ComputeDailyStats(buckets []DayBucket) []models.DailyStat {
	stats := make([]models.DailyStat, len(buckets))
	for i, bucket := range buckets {
		stats[i] = ComputeDailyStat(bucket)
	}
	return stats
}
