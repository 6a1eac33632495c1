// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

// Package main is the entry point for the Backlot analytics server.
//
// Backlot ingests page-view events from the content studio console (film,
// story, and production pages) and serves aggregated dashboard analytics:
// gap-free daily series, summary roll-ups, top-content rankings, and
// period-over-period trends.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, BACKLOT_* env vars (Koanf v2)
//  2. Logging: global zerolog logger from the logging config
//  3. Database: DuckDB event store with schema and indexes
//  4. Analytics engine: circuit-breaker-wrapped event source, timezone-aware
//     day bucketing
//  5. HTTP API: Chi router with ingest, dashboard, health, and metrics routes
//  6. Supervisor tree: suture v4 supervising the HTTP server and the
//     retention sweeper
//
// # Configuration
//
// Configuration is layered, highest priority last:
//   - Built-in defaults
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Environment variables (BACKLOT_SERVER__PORT=8080 sets server.port)
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests within the supervisor's
// shutdown timeout, and closes the database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/backlot/internal/analytics"
	"github.com/tomtom215/backlot/internal/api"
	"github.com/tomtom215/backlot/internal/config"
	"github.com/tomtom215/backlot/internal/database"
	"github.com/tomtom215/backlot/internal/logging"
	"github.com/tomtom215/backlot/internal/metrics"
	"github.com/tomtom215/backlot/internal/supervisor"
	"github.com/tomtom215/backlot/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		// The default logger is live before Init, so this still reports.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("db_path", cfg.Database.Path).
		Str("timezone", cfg.Analytics.Timezone).
		Msg("Starting Backlot")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	// Calendar-day bucketing follows the configured reporting timezone.
	loc, err := cfg.Analytics.Location()
	if err != nil {
		logging.Fatal().Err(err).Str("timezone", cfg.Analytics.Timezone).Msg("Invalid analytics timezone")
	}

	// The engine reads events through a circuit breaker so a struggling
	// database degrades dashboard reads instead of piling up queries.
	source := analytics.NewBreakerSource("event-store", db)
	engine := analytics.NewEngine(source, loc, cfg.Analytics.TopContentLimit)

	handler := api.NewHandler(db, engine, cfg)
	defer handler.Close()

	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics.SetAppInfo(api.Version)
	go metrics.TrackUptime(ctx, time.Now())

	// sutureslog needs an *slog.Logger; bridge it to zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMaintenanceService(services.NewRetentionService(db, cfg.Analytics.RetentionDays, cfg.Analytics.RetentionInterval))
	logging.Info().
		Int("retention_days", cfg.Analytics.RetentionDays).
		Dur("interval", cfg.Analytics.RetentionInterval).
		Msg("Retention sweeper added to supervisor tree")

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel; it closes when the supervisor has stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
