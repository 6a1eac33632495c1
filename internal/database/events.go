// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/backlot/internal/logging"
	"github.com/tomtom215/backlot/internal/metrics"
	"github.com/tomtom215/backlot/internal/models"
)

const eventsTable = "page_view_events"

// InsertPageViews stores a batch of page-view events in one transaction.
// Events without an ID get a fresh UUID. Duplicate IDs are silently
// skipped via ON CONFLICT DO NOTHING, so re-sent beacon batches are
// idempotent. Returns the number of newly inserted rows.
func (db *DB) InsertPageViews(ctx context.Context, events []models.PageViewEvent) (inserted int, err error) {
	if len(events) == 0 {
		return 0, nil
	}

	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("insert_batch", eventsTable, time.Since(start), err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Msg("Transaction rollback failed")
			}
		}
	}()

	query := `INSERT INTO page_view_events (
		id, ts, page_type, item_id, title, visitor_id,
		is_new_visitor, session_seconds, bounced, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO NOTHING`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	now := time.Now().UTC()
	for i := range events {
		event := &events[i]
		if event.ID == "" {
			event.ID = uuid.New().String()
		}

		result, execErr := stmt.ExecContext(ctx,
			event.ID,
			event.Timestamp.UTC(),
			string(event.PageType),
			event.ItemID,
			event.Title,
			event.VisitorID,
			event.IsNewVisitor,
			event.SessionSeconds,
			event.Bounced,
			now,
		)
		if execErr != nil {
			err = fmt.Errorf("failed to insert event %s: %w", event.ID, execErr)
			return 0, err
		}
		if rows, raErr := result.RowsAffected(); raErr == nil {
			inserted += int(rows)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit insert batch: %w", err)
	}

	return inserted, nil
}

// FetchPageViews returns events with ts in the half-open range [start, end),
// oldest first. A zero-value pageType means no type filter. This is the
// analytics engine's EventSource implementation.
func (db *DB) FetchPageViews(ctx context.Context, start, end time.Time, pageType models.PageType) (events []models.PageViewEvent, err error) {
	began := time.Now()
	defer func() {
		metrics.RecordDBQuery("fetch_range", eventsTable, time.Since(began), err)
	}()

	query := `SELECT id, ts, page_type, item_id, title, visitor_id,
		is_new_visitor, session_seconds, bounced
	FROM page_view_events
	WHERE ts >= ? AND ts < ?`
	args := []interface{}{start.UTC(), end.UTC()}

	if pageType != "" {
		query += ` AND page_type = ?`
		args = append(args, string(pageType))
	}
	query += ` ORDER BY ts ASC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query page views: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var event models.PageViewEvent
		var pt string
		if err = rows.Scan(
			&event.ID,
			&event.Timestamp,
			&pt,
			&event.ItemID,
			&event.Title,
			&event.VisitorID,
			&event.IsNewVisitor,
			&event.SessionSeconds,
			&event.Bounced,
		); err != nil {
			return nil, fmt.Errorf("failed to scan page view: %w", err)
		}
		event.PageType = models.PageType(pt)
		event.Timestamp = event.Timestamp.UTC()
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate page views: %w", err)
	}

	return events, nil
}

// DeletePageViewsBefore removes events older than cutoff and returns the
// number of rows deleted. Used by the retention sweeper.
func (db *DB) DeletePageViewsBefore(ctx context.Context, cutoff time.Time) (deleted int64, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("delete_before", eventsTable, time.Since(start), err)
	}()

	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM page_view_events WHERE ts < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired page views: %w", err)
	}

	deleted, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted page views: %w", err)
	}
	return deleted, nil
}

// CountPageViews returns the total number of stored events.
func (db *DB) CountPageViews(ctx context.Context) (count int64, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("count", eventsTable, time.Since(start), err)
	}()

	err = db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM page_view_events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count page views: %w", err)
	}
	return count, nil
}
