// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreateHabitRequest struct {
	Name string `json:"name"`
}

// Domain types

// Habit is the stored habit document. Log holds one entry per completed
// calendar day in the order the days were logged.
type Habit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Log  []Date `json:"log"`
}

// Clone returns a copy of h that shares no slice storage with it.
func (h Habit) Clone() Habit {
	log := make([]Date, len(h.Log))
	copy(log, h.Log)
	h.Log = log
	return h
}

// HasLogged reports whether d is already present in the log.
func (h Habit) HasLogged(d Date) bool {
	for _, entry := range h.Log {
		if entry.Equal(d) {
			return true
		}
	}
	return false
}

// Response types

type HealthResponse struct {
	Status string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
