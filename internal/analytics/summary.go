// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"github.com/tomtom215/backlot/internal/models"
)

// RollUpSummary reduces a daily series to window-level SummaryMetrics.
//
// Sums come from the daily series. Rates and distinct-visitor counts are
// recomputed from the raw events rather than averaged from per-day values:
// averaging already-averaged rates would weight a 2-view day equally with a
// 2000-view day, and summing per-day unique visitors would count a
// returning visitor once per active day.
func RollUpSummary(stats []models.DailyStat, events []models.PageViewEvent) models.SummaryMetrics {
	summary := models.SummaryMetrics{}

	for _, day := range stats {
		summary.TotalViews += day.PageViews
		summary.FilmViews += day.FilmViews
		summary.StoryViews += day.StoryViews
		summary.ProductionViews += day.ProductionViews
	}

	if len(events) == 0 {
		return summary
	}

	visitors := make(map[string]bool, len(events))
	newVisitors := make(map[string]bool)
	bounced := 0
	sessionTotal := 0.0

	for _, event := range events {
		visitors[event.VisitorID] = true
		if event.IsNewVisitor {
			newVisitors[event.VisitorID] = true
		}
		if event.Bounced {
			bounced++
		}
		sessionTotal += event.SessionSeconds
	}

	summary.TotalUniqueVisitors = len(visitors)
	summary.TotalNewVisitors = len(newVisitors)
	summary.AvgTimeOnSite = sessionTotal / float64(len(events))
	summary.BounceRate = float64(bounced) / float64(len(events)) * 100.0

	return summary
}
