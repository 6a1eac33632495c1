// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/backlot/internal/logging"
	"github.com/tomtom215/backlot/internal/metrics"
	"github.com/tomtom215/backlot/internal/models"
)

// EventSource supplies raw page-view events for a half-open instant range
// [start, end). A zero-value pageType means no type filter. Implementations
// must return only events whose timestamps fall inside the range.
type EventSource interface {
	FetchPageViews(ctx context.Context, start, end time.Time, pageType models.PageType) ([]models.PageViewEvent, error)
}

// Engine computes dashboard analytics from an EventSource.
//
// An Engine holds no mutable state and is safe for concurrent use; every
// ComputeAnalytics call derives both windows from a single clock reading, so
// one request never straddles a midnight boundary.
type Engine struct {
	source   EventSource
	loc      *time.Location
	topLimit int
	now      func() time.Time
}

// NewEngine builds an Engine over source. Day boundaries are computed in
// loc (UTC when nil). topLimit caps the top-content ranking; non-positive
// values fall back to 10.
func NewEngine(source EventSource, loc *time.Location, topLimit int) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if topLimit <= 0 {
		topLimit = 10
	}
	return &Engine{
		source:   source,
		loc:      loc,
		topLimit: topLimit,
		now:      time.Now,
	}
}

// ComputeAnalytics runs the full pipeline for a window of `days` calendar
// days ending today: bucketize, per-day stats, window summary, top content,
// and period-over-period trends against the preceding equal-length window.
//
// The current and previous windows are fetched concurrently. A failure on
// the current window fails the request; a failure on the previous window
// only degrades trends to a zero baseline, since the dashboard is still
// useful without comparison figures.
func (e *Engine) ComputeAnalytics(ctx context.Context, days int, pageType models.PageType) (*models.AnalyticsResult, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", ErrInvalidRange, days)
	}
	if pageType != "" && !pageType.Valid() {
		return nil, fmt.Errorf("%w: unknown page type %q", ErrInvalidRange, pageType)
	}

	started := e.now()
	defer func() {
		metrics.ObserveAnalyticsCompute(time.Since(started).Seconds())
	}()

	window, err := WindowEndingAt(started, days, e.loc)
	if err != nil {
		return nil, err
	}
	prevWindow := window.Previous()

	var (
		wg         sync.WaitGroup
		current    []models.PageViewEvent
		previous   []models.PageViewEvent
		currentErr error
		prevErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		from, to := window.FetchBounds()
		current, currentErr = e.source.FetchPageViews(ctx, from, to, pageType)
	}()
	go func() {
		defer wg.Done()
		from, to := prevWindow.FetchBounds()
		previous, prevErr = e.source.FetchPageViews(ctx, from, to, pageType)
	}()
	wg.Wait()

	if currentErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, currentErr)
	}
	if prevErr != nil {
		logging.Warn().
			Err(prevErr).
			Str("window_start", prevWindow.Start.Format(dateFormat)).
			Str("window_end", prevWindow.End.Format(dateFormat)).
			Msg("Previous-window fetch failed, trends use zero baseline")
		previous = nil
	}

	buckets, err := BucketizeDaily(current, window, e.loc)
	if err != nil {
		return nil, err
	}

	dailyStats := ComputeDailyStats(buckets)
	summary := RollUpSummary(dailyStats, current)

	var prevSummary models.SummaryMetrics
	if len(previous) > 0 {
		prevBuckets, err := BucketizeDaily(previous, prevWindow, e.loc)
		if err != nil {
			return nil, err
		}
		prevSummary = RollUpSummary(ComputeDailyStats(prevBuckets), previous)
	}

	return &models.AnalyticsResult{
		DailyStats: dailyStats,
		Summary:    summary,
		TopContent: RankTopContent(current, e.topLimit),
		Trends:     ComputeTrends(summary, prevSummary),
	}, nil
}
