// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import "errors"

// Engine errors. A window with zero events is not an error: it produces a
// valid all-zero result.
var (
	// ErrInvalidRange indicates a caller programming error: a non-positive
	// day count, an unknown content filter, or a window whose end precedes
	// its start. It is returned before any computation starts.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrSourceUnavailable indicates the event source fetch for the
	// primary window failed. It wraps the underlying fetch error.
	ErrSourceUnavailable = errors.New("event source unavailable")
)
