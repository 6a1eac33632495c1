// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/backlot/internal/analytics"
	"github.com/tomtom215/backlot/internal/cache"
	"github.com/tomtom215/backlot/internal/models"
)

// dashboardRequest carries the validated query parameters of the
// analytics endpoints.
type dashboardRequest struct {
	Days     int    `json:"days" validate:"min=1,max=365"`
	PageType string `json:"page_type" validate:"omitempty,oneof=film story production other"`
	Top      int    `json:"top" validate:"min=1,max=100"`
}

// Dashboard handles GET /api/v1/analytics/dashboard.
//
// Query parameters: days (default 30), content_type (film|story|production|other,
// default all), top (default from config). Responses are cached per
// parameter combination for the configured TTL; ingest clears the cache.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	req := dashboardRequest{
		Days:     getIntParam(r, "days", 30),
		PageType: r.URL.Query().Get("content_type"),
		Top:      getIntParam(r, "top", h.config.Analytics.TopContentLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	cacheKey := cache.GenerateKey("dashboard", req)

	if cached, found := h.cache.Get(cacheKey); found {
		if result, ok := cached.(*models.AnalyticsResult); ok {
			respondJSON(w, http.StatusOK, &models.APIResponse{
				Status: "success",
				Data:   result,
				Metadata: models.Metadata{
					Timestamp: time.Now(),
					Cached:    true,
				},
			})
			return
		}
	}

	result, err := h.engine.ComputeAnalytics(r.Context(), req.Days, models.PageType(req.PageType))
	if err != nil {
		h.respondAnalyticsError(w, err)
		return
	}
	result.TopContent = clampTopContent(result.TopContent, req.Top)

	h.cache.Set(cacheKey, result)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// TopContent handles GET /api/v1/analytics/top-content.
//
// Returns only the ranked content for the window, for console widgets
// that don't need the full dashboard payload.
func (h *Handler) TopContent(w http.ResponseWriter, r *http.Request) {
	req := dashboardRequest{
		Days:     getIntParam(r, "days", 30),
		PageType: r.URL.Query().Get("content_type"),
		Top:      getIntParam(r, "limit", h.config.Analytics.TopContentLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	start := time.Now()
	cacheKey := cache.GenerateKey("top_content", req)

	if cached, found := h.cache.Get(cacheKey); found {
		if entries, ok := cached.([]models.TopContentEntry); ok {
			respondJSON(w, http.StatusOK, &models.APIResponse{
				Status: "success",
				Data:   entries,
				Metadata: models.Metadata{
					Timestamp: time.Now(),
					Cached:    true,
				},
			})
			return
		}
	}

	result, err := h.engine.ComputeAnalytics(r.Context(), req.Days, models.PageType(req.PageType))
	if err != nil {
		h.respondAnalyticsError(w, err)
		return
	}

	entries := clampTopContent(result.TopContent, req.Top)
	if entries == nil {
		entries = []models.TopContentEntry{}
	}

	h.cache.Set(cacheKey, entries)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   entries,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondAnalyticsError maps engine errors to HTTP responses.
func (h *Handler) respondAnalyticsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analytics.ErrInvalidRange):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, analytics.ErrSourceUnavailable):
		respondError(w, http.StatusServiceUnavailable, "DATABASE_ERROR", "Event store unavailable", err)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute analytics", err)
	}
}

// clampTopContent truncates the ranking to limit entries. The engine
// already applies the configured default; this narrows per-request.
func clampTopContent(entries []models.TopContentEntry, limit int) []models.TopContentEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
