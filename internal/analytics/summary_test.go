// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"testing"
	"time"

	"github.com/tomtom215/backlot/internal/models"
)

func TestRollUpSummaryEmpty(t *testing.T) {
	summary := RollUpSummary(nil, nil)
	if summary != (models.SummaryMetrics{}) {
		t.Errorf("empty input must yield zero summary, got %+v", summary)
	}
	checkFinite(t, "AvgTimeOnSite", summary.AvgTimeOnSite)
	checkFinite(t, "BounceRate", summary.BounceRate)
}

func TestRollUpSummaryDistinctVisitorsAcrossDays(t *testing.T) {
	day1 := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// alice visits on both days: per-day uniques sum to 3,
	// but the window-level count must be 2.
	events := []models.PageViewEvent{
		{Timestamp: day1.Add(9 * time.Hour), PageType: models.PageTypeFilm, VisitorID: "alice", IsNewVisitor: true, SessionSeconds: 100},
		{Timestamp: day1.Add(10 * time.Hour), PageType: models.PageTypeStory, VisitorID: "bob", SessionSeconds: 200, Bounced: true},
		{Timestamp: day2.Add(9 * time.Hour), PageType: models.PageTypeFilm, VisitorID: "alice", SessionSeconds: 60},
	}

	w := Window{Start: day1, End: day2}
	buckets, err := BucketizeDaily(events, w, time.UTC)
	if err != nil {
		t.Fatalf("BucketizeDaily() error = %v", err)
	}
	stats := ComputeDailyStats(buckets)

	summary := RollUpSummary(stats, events)

	if summary.TotalViews != 3 {
		t.Errorf("TotalViews = %d, want 3", summary.TotalViews)
	}
	if summary.TotalUniqueVisitors != 2 {
		t.Errorf("TotalUniqueVisitors = %d, want 2 (alice spans both days)", summary.TotalUniqueVisitors)
	}
	if summary.TotalNewVisitors != 1 {
		t.Errorf("TotalNewVisitors = %d, want 1", summary.TotalNewVisitors)
	}
	if summary.FilmViews != 2 || summary.StoryViews != 1 || summary.ProductionViews != 0 {
		t.Errorf("type breakdown = %d/%d/%d, want 2/1/0",
			summary.FilmViews, summary.StoryViews, summary.ProductionViews)
	}
	checkClose(t, "AvgTimeOnSite", summary.AvgTimeOnSite, (100.0+200+60)/3)
	checkClose(t, "BounceRate", summary.BounceRate, 1.0/3*100)
}

func TestRollUpSummaryRatesNotAveraged(t *testing.T) {
	day1 := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// Day 1: one bounced view (100% day rate). Day 2: three clean views
	// (0% day rate). Averaging day rates would give 50%; the window rate
	// must weight by views: 1 bounce / 4 views = 25%.
	events := []models.PageViewEvent{
		{Timestamp: day1.Add(8 * time.Hour), PageType: models.PageTypeFilm, VisitorID: "a", SessionSeconds: 5, Bounced: true},
		{Timestamp: day2.Add(8 * time.Hour), PageType: models.PageTypeFilm, VisitorID: "b", SessionSeconds: 100},
		{Timestamp: day2.Add(9 * time.Hour), PageType: models.PageTypeFilm, VisitorID: "c", SessionSeconds: 100},
		{Timestamp: day2.Add(10 * time.Hour), PageType: models.PageTypeFilm, VisitorID: "d", SessionSeconds: 100},
	}

	w := Window{Start: day1, End: day2}
	buckets, err := BucketizeDaily(events, w, time.UTC)
	if err != nil {
		t.Fatalf("BucketizeDaily() error = %v", err)
	}

	summary := RollUpSummary(ComputeDailyStats(buckets), events)
	if summary.BounceRate != 25.0 {
		t.Errorf("BounceRate = %f, want 25.0 (view-weighted, not day-averaged)", summary.BounceRate)
	}
}
