// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateHabitRequest: name

# Response Types

  - HealthResponse: status
  - ErrorResponse: error

# Domain Types

  - Habit: id, name and the completion log
  - Date: a calendar day, encoded as "YYYY-MM-DD"

A Habit serializes as:

	{"id": "6f1c...", "name": "Read", "log": ["2025-01-06", "2025-01-08"]}

Dates compare at day granularity only. Decoding accepts RFC 3339
timestamps as well and drops the time-of-day, so a log never carries
time components.
*/
package models
