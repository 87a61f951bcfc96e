// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the habit API.

# Handler Types

HabitHandler wraps anything satisfying HabitStore (normally *store.Store):

	habitHandler := handlers.NewHabitHandler(store.New(db.NewCollection(conn)))

# Routes

	GET   /api/habits           → ListHabits (200, array of habits)
	POST  /api/habits           → CreateHabit (201, {"name": "..."} required)
	PATCH /api/habits/{id}/log  → LogToday (200, idempotent per day)
	GET   /api/habits/{id}/logs → WeekLogs (200, dates in the current week)
	GET   /api/health           → Health

WeekLogs accepts ?date=YYYY-MM-DD to look at the week containing that day.

# Errors

Store errors map to status codes:

	store.ErrInvalidInput       → 400 {"error": "name is required"}
	store.ErrNotFound           → 404 {"error": "habit not found"}
	store.ErrStorageUnavailable → 500 {"error": "storage unavailable"}

Malformed habit ids are reported as 404.
*/
package handlers
