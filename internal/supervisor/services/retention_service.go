// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package services

import (
	"context"
	"time"

	"github.com/tomtom215/backlot/internal/logging"
	"github.com/tomtom215/backlot/internal/metrics"
)

// EventPruner deletes page-view events older than a cutoff instant and
// reports how many rows were removed. Satisfied by *database.DB.
type EventPruner interface {
	DeletePageViewsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionService periodically prunes raw page-view events older than the
// configured retention window. A retentionDays of zero or less disables
// pruning entirely: the service stays alive but never deletes anything, so
// the supervisor tree keeps the same shape regardless of configuration.
type RetentionService struct {
	pruner        EventPruner
	retentionDays int
	interval      time.Duration
	name          string

	// now is swapped out by tests to pin the cutoff calculation.
	now func() time.Time
}

// NewRetentionService creates a retention sweeper. Non-positive intervals
// fall back to once per hour.
func NewRetentionService(pruner EventPruner, retentionDays int, interval time.Duration) *RetentionService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &RetentionService{
		pruner:        pruner,
		retentionDays: retentionDays,
		interval:      interval,
		name:          "retention-sweeper",
		now:           time.Now,
	}
}

// Serve implements suture.Service.
//
// Runs one sweep immediately, then one per interval until the context is
// canceled. Sweep errors are logged and counted but do not crash the
// service; a transient database error should not trigger a restart storm.
func (s *RetentionService) Serve(ctx context.Context) error {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep performs a single retention pass.
func (s *RetentionService) sweep(ctx context.Context) {
	if s.retentionDays <= 0 {
		return
	}

	cutoff := s.now().AddDate(0, 0, -s.retentionDays)

	deleted, err := s.pruner.DeletePageViewsBefore(ctx, cutoff)
	if err != nil {
		logging.Warn().
			Err(err).
			Time("cutoff", cutoff).
			Msg("Retention sweep failed")
		return
	}

	metrics.RecordRetentionSweep(deleted)

	if deleted > 0 {
		logging.Info().
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Msg("Retention sweep removed expired events")
	}
}

// String implements fmt.Stringer; suture uses it to identify the service
// in log messages.
func (s *RetentionService) String() string {
	return s.name
}
