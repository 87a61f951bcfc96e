// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the habit-log API server.

habit-log tracks named habits and the calendar days each one was done.
Logging a habit is idempotent per day, and the week view returns the days
logged between Sunday and Saturday of the current week.

# Starting the Server

The server reads configuration from CLI flags, environment variables or a
.env file:

	DATABASE_URL=file:habits.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite DSN or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ENV_FILE (-env): dotenv file to load (default: .env)

# Architecture

  - handlers: HTTP request handlers for habits and health
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: Habit operations, day idempotency and the Sunday week window
  - db: Schema creation and the SQL-backed habit collection
  - models: Habit and calendar Date types
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
