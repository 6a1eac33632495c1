// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"fmt"
	"time"
)

// dateFormat is the ISO-8601 calendar-day form used throughout the engine.
const dateFormat = "2006-01-02"

// Window is a contiguous, inclusive range of calendar days. Start and End
// are start-of-day instants in the window's location; End names the last
// day of the window, not an exclusive bound.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowEndingAt builds the window of `days` calendar days whose last day
// contains the anchor instant. Day boundaries are computed in loc.
// Returns ErrInvalidRange when days is not positive.
func WindowEndingAt(anchor time.Time, days int, loc *time.Location) (Window, error) {
	if days <= 0 {
		return Window{}, fmt.Errorf("%w: days must be positive, got %d", ErrInvalidRange, days)
	}

	end := startOfDay(anchor, loc)
	start := end.AddDate(0, 0, -(days - 1))
	return Window{Start: start, End: end}, nil
}

// Days returns the number of calendar days in the window, inclusive of
// both bounds. Counted by date arithmetic rather than elapsed hours so DST
// transitions do not shift the count.
func (w Window) Days() int {
	days := 0
	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// Previous returns the equal-length window immediately preceding w. The
// two windows are adjacent and non-overlapping: the previous window ends
// on the day before w starts, so the boundary day is never double-counted.
func (w Window) Previous() Window {
	days := w.Days()
	return Window{
		Start: w.Start.AddDate(0, 0, -days),
		End:   w.Start.AddDate(0, 0, -1),
	}
}

// FetchBounds returns the half-open instant range [from, to) covering the
// window, suitable for event-source queries: from is the start of the first
// day, to is the start of the day after the last day.
func (w Window) FetchBounds() (time.Time, time.Time) {
	return w.Start, w.End.AddDate(0, 0, 1)
}

// startOfDay truncates t to the start of its calendar day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
