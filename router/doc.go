// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the habit API.

# Route Registration

NewRouter builds an http.ServeMux (Go 1.22+ method patterns) and wraps it
in CORS and Prometheus instrumentation:

	handler := router.NewRouter(habits)

# Endpoints

	GET   /api/health           - Liveness check
	GET   /api/habits           - List habits
	POST  /api/habits           - Create habit
	PATCH /api/habits/{id}/log  - Log today
	GET   /api/habits/{id}/logs - This week's log entries
	GET   /metrics              - Prometheus metrics
	GET   /                     - Banner

Unsupported methods on known paths return 405 from the mux.
*/
package router
