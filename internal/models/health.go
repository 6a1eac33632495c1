// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package models

// HealthStatus is the payload of the full health endpoint. Status is
// "healthy" when the event store answers pings, "degraded" otherwise.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	EventCount        int64   `json:"event_count"`
	CacheHitRate      float64 `json:"cache_hit_rate"`
	Uptime            float64 `json:"uptime"`
}
