// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

// Package middleware provides HTTP middleware for request ID tracking and
// Prometheus metrics instrumentation. Routing-level concerns (CORS, rate
// limiting, panic recovery) use the Chi ecosystem middleware directly; this
// package holds the pieces that integrate with the app's own logging and
// metrics.
package middleware
