// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3861 {
		t.Errorf("Server.Port = %d, expected 3861", cfg.Server.Port)
	}
	if cfg.Analytics.Timezone != "UTC" {
		t.Errorf("Analytics.Timezone = %q, expected UTC", cfg.Analytics.Timezone)
	}
	if cfg.Analytics.TopContentLimit != 10 {
		t.Errorf("Analytics.TopContentLimit = %d, expected 10", cfg.Analytics.TopContentLimit)
	}
	if cfg.API.CacheTTL != 5*time.Minute {
		t.Errorf("API.CacheTTL = %v, expected 5m", cfg.API.CacheTTL)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
server:
  port: 8080
analytics:
  timezone: Europe/Amsterdam
  top_content_limit: 7
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, expected 8080", cfg.Server.Port)
	}
	if cfg.Analytics.Timezone != "Europe/Amsterdam" {
		t.Errorf("Analytics.Timezone = %q, expected Europe/Amsterdam", cfg.Analytics.Timezone)
	}
	if cfg.Analytics.TopContentLimit != 7 {
		t.Errorf("Analytics.TopContentLimit = %d, expected 7", cfg.Analytics.TopContentLimit)
	}
	// Untouched sections keep defaults
	if cfg.Database.MaxMemory != "2GB" {
		t.Errorf("Database.MaxMemory = %q, expected 2GB", cfg.Database.MaxMemory)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BACKLOT_SERVER__PORT", "9001")
	t.Setenv("BACKLOT_ANALYTICS__RETENTION_DAYS", "365")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9001 {
		t.Errorf("Server.Port = %d, expected 9001 from environment", cfg.Server.Port)
	}
	if cfg.Analytics.RetentionDays != 365 {
		t.Errorf("Analytics.RetentionDays = %d, expected 365 from environment", cfg.Analytics.RetentionDays)
	}
}

func TestEnvKeyMapper(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"BACKLOT_SERVER__PORT", "server.port"},
		{"BACKLOT_DATABASE__MAX_MEMORY", "database.max_memory"},
		{"BACKLOT_ANALYTICS__TOP_CONTENT_LIMIT", "analytics.top_content_limit"},
		{"BACKLOT_LOGGING__LEVEL", "logging.level"},
	}

	for _, tt := range tests {
		if got := envKeyMapper(tt.input); got != tt.expected {
			t.Errorf("envKeyMapper(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty database path", func(c *Config) { c.Database.Path = "" }},
		{"zero top content limit", func(c *Config) { c.Analytics.TopContentLimit = 0 }},
		{"zero retention", func(c *Config) { c.Analytics.RetentionDays = 0 }},
		{"bad timezone", func(c *Config) { c.Analytics.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
