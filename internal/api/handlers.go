// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package api

import (
	"context"
	"time"

	"github.com/tomtom215/backlot/internal/analytics"
	"github.com/tomtom215/backlot/internal/cache"
	"github.com/tomtom215/backlot/internal/config"
	"github.com/tomtom215/backlot/internal/models"
)

// EventStore is the persistence surface the HTTP handlers need: batch
// ingest, a total count for health reporting, and liveness checks. The
// analytics read path goes through the engine, not this interface.
type EventStore interface {
	InsertPageViews(ctx context.Context, events []models.PageViewEvent) (int, error)
	CountPageViews(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared response/parsing helpers
//   - handlers_analytics.go: dashboard and top-content endpoints
//   - handlers_events.go: event ingest endpoint
//   - handlers_health.go: health/monitoring endpoints
type Handler struct {
	store     EventStore
	engine    *analytics.Engine
	config    *config.Config
	cache     *cache.Cache
	startTime time.Time
}

// NewHandler creates an API handler. The analytics cache TTL comes from
// the API config; dashboards tolerate data that is a few minutes stale.
func NewHandler(store EventStore, engine *analytics.Engine, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		engine:    engine,
		config:    cfg,
		cache:     cache.New("analytics", cfg.API.CacheTTL),
		startTime: time.Now(),
	}
}

// Close releases handler-owned resources.
func (h *Handler) Close() {
	h.cache.Close()
}

// Cache exposes the analytics cache for stats reporting and tests.
func (h *Handler) Cache() *cache.Cache {
	return h.cache
}
