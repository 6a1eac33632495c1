// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

// Package analytics implements the aggregation engine that turns raw
// page-view events into dashboard statistics.
//
// The engine is a pure, stateless pipeline over events fetched for a
// calendar-day window:
//
//	Bucketize -> per-day stats -> window summary -> top content -> trends
//
// Every stage guards zero-denominator divisions explicitly and returns 0
// instead of NaN or Inf; a single NaN would propagate silently through every
// downstream sum and average, so this is the property the whole package
// protects. Daily series are gap-free: a day with no traffic still produces
// an all-zero entry.
//
// Trend percentages compare the requested window against the equal-length
// window immediately preceding it. A missing baseline never yields an
// undefined ratio: growth is 0 when both periods are zero and capped at +100
// when only the previous period is zero.
//
// The only I/O is the EventSource fetch; everything else is in-memory
// computation, so concurrent requests need no locking.
package analytics
