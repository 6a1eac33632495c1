// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package analytics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tomtom215/backlot/internal/models"
)

// viewAt builds a minimal page-view event for bucketing tests.
func viewAt(ts time.Time, visitor string) models.PageViewEvent {
	return models.PageViewEvent{
		ID:        fmt.Sprintf("evt-%s-%s", visitor, ts.Format(time.RFC3339)),
		Timestamp: ts,
		PageType:  models.PageTypeFilm,
		ItemID:    "film-1",
		Title:     "Test Film",
		VisitorID: visitor,
	}
}

func TestBucketizeDaily(t *testing.T) {
	w := Window{
		Start: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}

	events := []models.PageViewEvent{
		viewAt(time.Date(2026, 8, 24, 9, 15, 0, 0, time.UTC), "v1"),
		viewAt(time.Date(2026, 8, 24, 23, 59, 59, 0, time.UTC), "v2"),
		viewAt(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), "v1"), // exactly midnight
		viewAt(time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC), "v3"),
	}

	buckets, err := BucketizeDaily(events, w, time.UTC)
	if err != nil {
		t.Fatalf("BucketizeDaily() error = %v", err)
	}

	if len(buckets) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(buckets))
	}

	wantCounts := map[string]int{
		"2026-08-24": 2,
		"2026-08-25": 0,
		"2026-08-26": 1, // midnight event belongs to the day it starts
		"2026-08-27": 0,
		"2026-08-28": 1,
	}

	for i, bucket := range buckets {
		date := bucket.Date.Format(dateFormat)
		if want, ok := wantCounts[date]; !ok {
			t.Errorf("unexpected bucket date %s", date)
		} else if len(bucket.Events) != want {
			t.Errorf("bucket %s has %d events, want %d", date, len(bucket.Events), want)
		}
		if i > 0 && !buckets[i-1].Date.Before(bucket.Date) {
			t.Errorf("buckets not in ascending date order at index %d", i)
		}
	}
}

func TestBucketizeDailyEmptyInput(t *testing.T) {
	w := Window{
		Start: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}

	buckets, err := BucketizeDaily(nil, w, time.UTC)
	if err != nil {
		t.Fatalf("BucketizeDaily() error = %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("expected 3 empty buckets, got %d", len(buckets))
	}
	for _, bucket := range buckets {
		if len(bucket.Events) != 0 {
			t.Errorf("bucket %s should be empty", bucket.Date.Format(dateFormat))
		}
	}
}

func TestBucketizeDailyIgnoresOutOfWindow(t *testing.T) {
	w := Window{
		Start: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}

	events := []models.PageViewEvent{
		viewAt(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC), "stray"),
		viewAt(time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC), "v1"),
		viewAt(time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), "stray"),
	}

	buckets, err := BucketizeDaily(events, w, time.UTC)
	if err != nil {
		t.Fatalf("BucketizeDaily() error = %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}

	total := 0
	for _, bucket := range buckets {
		total += len(bucket.Events)
	}
	if total != 1 {
		t.Errorf("out-of-window events must be dropped: got %d bucketed events, want 1", total)
	}
}

func TestBucketizeDailyInvertedWindow(t *testing.T) {
	w := Window{
		Start: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}

	if _, err := BucketizeDaily(nil, w, time.UTC); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestBucketizeDailyIdempotent(t *testing.T) {
	w := Window{
		Start: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}

	events := []models.PageViewEvent{
		viewAt(time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC), "v1"),
		viewAt(time.Date(2026, 8, 27, 11, 0, 0, 0, time.UTC), "v2"),
	}

	first, err := BucketizeDaily(events, w, time.UTC)
	if err != nil {
		t.Fatalf("BucketizeDaily() error = %v", err)
	}
	second, err := BucketizeDaily(events, w, time.UTC)
	if err != nil {
		t.Fatalf("BucketizeDaily() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("repeated runs disagree on bucket count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Date.Equal(second[i].Date) || len(first[i].Events) != len(second[i].Events) {
			t.Errorf("bucket %d differs between identical runs", i)
		}
	}
}
