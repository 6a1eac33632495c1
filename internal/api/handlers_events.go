// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/backlot/internal/logging"
	"github.com/tomtom215/backlot/internal/metrics"
	"github.com/tomtom215/backlot/internal/models"
)

// ingestEvent is the wire form of one page-view beacon.
type ingestEvent struct {
	ID             string    `json:"id" validate:"omitempty,uuid"`
	Timestamp      time.Time `json:"timestamp" validate:"required"`
	PageType       string    `json:"page_type" validate:"required,oneof=film story production other"`
	ItemID         string    `json:"item_id" validate:"required,max=256"`
	Title          string    `json:"title" validate:"max=512"`
	VisitorID      string    `json:"visitor_id" validate:"required,max=128"`
	IsNewVisitor   bool      `json:"is_new_visitor"`
	SessionSeconds float64   `json:"session_seconds" validate:"min=0"`
	Bounced        bool      `json:"bounced"`
}

// ingestRequest is the batch envelope posted by the tracking beacon.
type ingestRequest struct {
	Events []ingestEvent `json:"events" validate:"required,min=1,dive"`
}

// ingestResponse reports how many events the batch carried and how many
// were newly stored (duplicates by ID are skipped).
type ingestResponse struct {
	Received int `json:"received"`
	Inserted int `json:"inserted"`
}

// IngestEvents handles POST /api/v1/events. Batches are all-or-nothing:
// one invalid event rejects the whole batch so the beacon can fix and
// resend without partial-write ambiguity. A successful ingest clears the
// analytics cache so dashboards pick up the new events.
func (h *Handler) IngestEvents(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordIngestRejection("parse")
		respondError(w, http.StatusBadRequest, "PARSE_ERROR", "Invalid JSON request body", err)
		return
	}

	if max := h.config.API.MaxIngestBatch; len(req.Events) > max {
		metrics.RecordIngestRejection("batch_too_large")
		respondError(w, http.StatusRequestEntityTooLarge, "BATCH_TOO_LARGE",
			fmt.Sprintf("Batch of %d events exceeds the limit of %d", len(req.Events), max), nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordIngestRejection("validation")
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	events := make([]models.PageViewEvent, len(req.Events))
	for i, in := range req.Events {
		events[i] = models.PageViewEvent{
			ID:             in.ID,
			Timestamp:      in.Timestamp,
			PageType:       models.PageType(in.PageType),
			ItemID:         in.ItemID,
			Title:          in.Title,
			VisitorID:      in.VisitorID,
			IsNewVisitor:   in.IsNewVisitor,
			SessionSeconds: in.SessionSeconds,
			Bounced:        in.Bounced,
		}
	}

	inserted, err := h.store.InsertPageViews(r.Context(), events)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to store events", err)
		return
	}

	metrics.RecordIngestBatch(inserted)
	h.cache.Clear()

	logging.Ctx(r.Context()).Info().
		Int("received", len(events)).
		Int("inserted", inserted).
		Msg("Ingested page-view batch")

	respondJSON(w, http.StatusAccepted, &models.APIResponse{
		Status: "success",
		Data: ingestResponse{
			Received: len(events),
			Inserted: inserted,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
