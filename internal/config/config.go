// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/backlot/config.yaml",
	"/etc/backlot/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix is the prefix for environment variable overrides. Nested keys
// use a double underscore: BACKLOT_SERVER__PORT=8080 sets server.port.
const envPrefix = "BACKLOT_"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	API       APIConfig       `koanf:"api"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// DatabaseConfig holds DuckDB settings for the page-view event store.
type DatabaseConfig struct {
	// Path is the DuckDB database file. ":memory:" opens an in-memory
	// database, used by tests.
	Path string `koanf:"path"`

	MaxMemory string `koanf:"max_memory"`

	// Threads sets the DuckDB thread count; 0 means runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// APIConfig holds request handling limits and cache settings.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	MaxIngestBatch  int           `koanf:"max_ingest_batch"`
}

// AnalyticsConfig holds aggregation engine settings.
type AnalyticsConfig struct {
	// Timezone names the location used for calendar-day boundaries,
	// e.g. "UTC" or "Europe/Amsterdam".
	Timezone string `koanf:"timezone"`

	// TopContentLimit is the default number of ranked items returned.
	TopContentLimit int `koanf:"top_content_limit"`

	// RetentionDays is how long raw page-view events are kept before the
	// retention service prunes them.
	RetentionDays int `koanf:"retention_days"`

	// RetentionInterval is how often the retention service runs.
	RetentionInterval time.Duration `koanf:"retention_interval"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all defaults applied. Defaults are
// loaded first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        3861,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:      "/data/backlot.duckdb",
			MaxMemory: "2GB",
			Threads:   0, // 0 = runtime.NumCPU()
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			RateLimitReqs:   300,
			RateLimitWindow: time.Minute,
			CacheTTL:        5 * time.Minute,
			CORSOrigins:     []string{"*"},
			MaxIngestBatch:  500,
		},
		Analytics: AnalyticsConfig{
			Timezone:          "UTC",
			TopContentLimit:   10,
			RetentionDays:     730,
			RetentionInterval: 12 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load reads configuration from defaults, an optional YAML file, and
// BACKLOT_* environment variables, in that order of increasing priority.
func Load() (*Config, error) {
	return LoadFrom(resolveConfigPath())
}

// LoadFrom loads configuration with an explicit config file path.
// An empty path skips the file layer.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// BACKLOT_SERVER__PORT=8080 -> server.port
	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath returns the first existing config file path, honoring
// the CONFIG_PATH override. Returns "" when no file is present, which is
// fine: defaults plus environment are a complete configuration.
func resolveConfigPath() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envKeyMapper converts BACKLOT_SECTION__SUB_KEY to section.sub_key.
// Double underscores separate nesting levels so snake_case key names
// survive the mapping.
func envKeyMapper(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Validate checks the configuration for values that would break startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.API.MaxPageSize < 1 {
		return fmt.Errorf("api.max_page_size must be positive, got %d", c.API.MaxPageSize)
	}
	if c.API.MaxIngestBatch < 1 {
		return fmt.Errorf("api.max_ingest_batch must be positive, got %d", c.API.MaxIngestBatch)
	}
	if c.Analytics.TopContentLimit < 1 {
		return fmt.Errorf("analytics.top_content_limit must be positive, got %d", c.Analytics.TopContentLimit)
	}
	if c.Analytics.RetentionDays < 1 {
		return fmt.Errorf("analytics.retention_days must be positive, got %d", c.Analytics.RetentionDays)
	}
	if _, err := time.LoadLocation(c.Analytics.Timezone); err != nil {
		return fmt.Errorf("analytics.timezone %q is not a valid location: %w", c.Analytics.Timezone, err)
	}
	return nil
}

// Location returns the time.Location for calendar-day boundaries.
// Validate guarantees the timezone loads, so errors here indicate the
// config was never validated.
func (c *AnalyticsConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
