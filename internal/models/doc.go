// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

// Package models defines the shared data types for Backlot.
//
// It contains the raw page-view event shape ingested from the console's
// tracking beacon, the derived analytics types produced by the aggregation
// engine (daily series, summaries, rankings, trends), and the standard
// APIResponse envelope used by every HTTP endpoint.
//
// Types in this package are plain data carriers with no behavior beyond
// small validation helpers; all computation lives in internal/analytics.
package models
