// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

// Package services contains suture.Service wrappers for Backlot's
// long-running components: the HTTP server and the event retention
// sweeper. Each wrapper adapts a blocking or tick-driven lifecycle to
// suture's context-aware Serve pattern.
package services
