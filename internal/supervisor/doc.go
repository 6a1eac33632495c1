// Backlot - Content Studio Console and Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/backlot

/*
Package supervisor provides process supervision for Backlot using suture v4.

The tree organizes long-running services into two layers for failure
isolation:

	RootSupervisor ("backlot")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── RetentionService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in the retention sweeper never takes the HTTP server down with it,
and each layer restarts independently with its own failure counting.

Crashed services are restarted automatically with exponential backoff, and
context cancellation triggers an orderly shutdown of the whole tree. Suture
events are logged through the sutureslog adapter, which this package feeds
from the application's zerolog-backed slog handler.
*/
package supervisor
