// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package metrics

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
	}{
		{name: "successful SELECT", operation: "SELECT", table: "page_view_events", err: nil},
		{name: "successful INSERT", operation: "INSERT", table: "page_view_events", err: nil},
		{name: "failed DELETE", operation: "DELETE", table: "page_view_events", err: errors.New("locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table))
			RecordDBQuery(tt.operation, tt.table, 5*time.Millisecond, tt.err)
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table))

			wantDelta := 0.0
			if tt.err != nil {
				wantDelta = 1.0
			}
			if after-before != wantDelta {
				t.Errorf("error counter delta = %f, want %f", after-before, wantDelta)
			}
		})
	}
}

func TestSetCircuitBreakerState(t *testing.T) {
	tests := []struct {
		state string
		want  float64
	}{
		{"closed", 0},
		{"half-open", 1},
		{"open", 2},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			SetCircuitBreakerState("test-breaker", tt.state)
			if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")); got != tt.want {
				t.Errorf("state gauge = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("test-version")

	got := testutil.ToFloat64(AppInfo.WithLabelValues("test-version", runtime.Version()))
	if got != 1 {
		t.Errorf("app_info gauge = %f, want 1", got)
	}
}

func TestTrackUptime(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	start := time.Now().Add(-time.Minute)
	done := make(chan struct{})
	go func() {
		TrackUptime(ctx, start)
		close(done)
	}()

	// The gauge is set once before the ticker loop starts.
	deadline := time.After(2 * time.Second)
	for testutil.ToFloat64(AppUptime) < 60 {
		select {
		case <-deadline:
			t.Fatal("uptime gauge was never set")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("TrackUptime did not stop after cancel")
	}
}
