// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package models

// DailyStat is one calendar day of aggregated page-view metrics.
//
// A daily series always contains exactly one entry per calendar day in the
// requested window, sorted ascending by date, with days that saw no traffic
// present as all-zero entries. Rates are defined as 0 when no visits
// occurred; no field is ever NaN or infinite.
type DailyStat struct {
	// Date is the calendar day in ISO-8601 form (YYYY-MM-DD), unique
	// within a series.
	Date string `json:"date"`

	PageViews      int `json:"page_views"`
	UniqueVisitors int `json:"unique_visitors"`
	NewVisitors    int `json:"new_visitors"`

	// AvgTimeOnSite is the mean session duration in seconds across the
	// day's events, 0 for empty days.
	AvgTimeOnSite float64 `json:"avg_time_on_site"`

	// BounceRate is the percentage of bounced views for the day, in
	// [0, 100], 0 for empty days.
	BounceRate float64 `json:"bounce_rate"`

	FilmViews       int `json:"film_views"`
	StoryViews      int `json:"story_views"`
	ProductionViews int `json:"production_views"`
}

// SummaryMetrics is the window-level roll-up of a daily series.
//
// Rates are recomputed from the underlying raw totals (total bounces over
// total views), never averaged from per-day rates, so low-traffic days do
// not bias the window-level figures. TotalUniqueVisitors counts distinct
// visitors across the whole window; a visitor active on three days counts
// once.
type SummaryMetrics struct {
	TotalViews          int     `json:"total_views"`
	TotalUniqueVisitors int     `json:"total_unique_visitors"`
	TotalNewVisitors    int     `json:"total_new_visitors"`
	AvgTimeOnSite       float64 `json:"avg_time_on_site"`
	BounceRate          float64 `json:"bounce_rate"`
	FilmViews           int     `json:"film_views"`
	StoryViews          int     `json:"story_views"`
	ProductionViews     int     `json:"production_views"`
}

// TopContentEntry is one ranked content item in a window.
//
// Entries are unique per ItemID and sorted descending by Count with
// ItemID-ascending tie-breaks for deterministic output.
type TopContentEntry struct {
	ItemID   string   `json:"item_id"`
	Title    string   `json:"title"`
	PageType PageType `json:"page_type"`
	Count    int      `json:"count"`
}

// TrendMetric is the signed percentage growth of one summary metric between
// the requested window and the equal-length window immediately preceding it.
//
// Growth is ((current - previous) / previous) * 100 when previous > 0,
// 0 when both periods are zero, and capped at +100 when the previous period
// had no baseline but the current period saw activity.
type TrendMetric struct {
	Metric string  `json:"metric"`
	Growth float64 `json:"growth"`
}

// AnalyticsResult is the engine's complete output for one dashboard request.
// It is built fresh per request, never persisted, and immutable once
// returned.
type AnalyticsResult struct {
	DailyStats []DailyStat            `json:"daily_stats"`
	Summary    SummaryMetrics         `json:"summary"`
	TopContent []TopContentEntry      `json:"top_content"`
	Trends     map[string]TrendMetric `json:"trends"`
}
