// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package api

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "normal value", "normal value"},
		{"newline injection", "line1\nFAKE LOG", "line1\\x0aFAKE LOG"},
		{"carriage return", "a\rb", "a\\x0db"},
		{"tab", "a\tb", "a\\x09b"},
		{"delete char", "a\x7fb", "a\\x7fb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte("payload-a"))
	b := generateETag([]byte("payload-b"))

	if a == "" {
		t.Error("ETag must not be empty")
	}
	if a != generateETag([]byte("payload-a")) {
		t.Error("identical payloads must produce identical ETags")
	}
	if a == b {
		t.Error("different payloads should produce different ETags")
	}
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
		key   string
		def   int
		want  int
	}{
		{"present", "days=14", "days", 30, 14},
		{"absent", "", "days", 30, 30},
		{"not a number", "days=abc", "days", 30, 30},
		{"negative", "days=-5", "days", 30, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)
			if got := getIntParam(r, tt.key, tt.def); got != tt.want {
				t.Errorf("getIntParam(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}
