// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/backlot/internal/logging"
	"github.com/tomtom215/backlot/internal/metrics"
	"github.com/tomtom215/backlot/internal/models"
)

// BreakerSource wraps an EventSource with a circuit breaker so a struggling
// event store sheds load instead of queueing dashboard requests behind slow
// failing queries. While the breaker is open, FetchPageViews fails fast
// with gobreaker.ErrOpenState wrapped in the source error.
type BreakerSource struct {
	source  EventSource
	breaker *gobreaker.CircuitBreaker[[]models.PageViewEvent]
}

// NewBreakerSource wraps source with a named circuit breaker.
//
// The breaker trips when at least 60% of a rolling minute's requests fail,
// with a 10-request minimum so a single cold-start error cannot open it.
// After two minutes it half-opens and lets three probe requests through.
func NewBreakerSource(name string, source EventSource) *BreakerSource {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetCircuitBreakerState(name, to.String())
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	}

	return &BreakerSource{
		source:  source,
		breaker: gobreaker.NewCircuitBreaker[[]models.PageViewEvent](settings),
	}
}

// FetchPageViews implements EventSource through the breaker.
func (b *BreakerSource) FetchPageViews(ctx context.Context, start, end time.Time, pageType models.PageType) ([]models.PageViewEvent, error) {
	events, err := b.breaker.Execute(func() ([]models.PageViewEvent, error) {
		return b.source.FetchPageViews(ctx, start, end, pageType)
	})
	if err != nil {
		metrics.RecordCircuitBreakerRequest(b.breaker.Name(), "failure")
		return nil, err
	}
	metrics.RecordCircuitBreakerRequest(b.breaker.Name(), "success")
	return events, nil
}

// State exposes the breaker's current state for health reporting.
func (b *BreakerSource) State() gobreaker.State {
	return b.breaker.State()
}
