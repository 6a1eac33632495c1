// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"github.com/tomtom215/backlot/internal/models"
)

// Metric keys used in the trends map of an AnalyticsResult.
const (
	MetricPageViews      = "page_views"
	MetricUniqueVisitors = "unique_visitors"
	MetricNewVisitors    = "new_visitors"
	MetricAvgTimeOnSite  = "avg_time_on_site"
	MetricBounceRate     = "bounce_rate"
)

// Growth returns the period-over-period percentage change from previous to
// current. A zero previous value with a positive current is reported as
// +100 (metric appeared); both zero is 0 (no change). Division only happens
// with a non-zero denominator, so the result is never NaN or Inf.
func Growth(current, previous float64) float64 {
	if previous != 0 {
		return ((current - previous) / previous) * 100.0
	}
	if current > 0 {
		return 100.0
	}
	return 0.0
}

// ComputeTrends compares two window summaries and returns the growth of
// each headline metric. The map always carries all five metric keys, so
// API consumers can index without existence checks.
func ComputeTrends(current, previous models.SummaryMetrics) map[string]models.TrendMetric {
	trends := make(map[string]models.TrendMetric, 5)

	add := func(key string, cur, prev float64) {
		trends[key] = models.TrendMetric{
			Metric: key,
			Growth: Growth(cur, prev),
		}
	}

	add(MetricPageViews, float64(current.TotalViews), float64(previous.TotalViews))
	add(MetricUniqueVisitors, float64(current.TotalUniqueVisitors), float64(previous.TotalUniqueVisitors))
	add(MetricNewVisitors, float64(current.TotalNewVisitors), float64(previous.TotalNewVisitors))
	add(MetricAvgTimeOnSite, current.AvgTimeOnSite, previous.AvgTimeOnSite)
	add(MetricBounceRate, current.BounceRate, previous.BounceRate)

	return trends
}
