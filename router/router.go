// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/habit-log/handlers"
	"github.com/danielhkuo/habit-log/metrics"
	"github.com/danielhkuo/habit-log/middleware"
)

// NewRouter returns the full API handler: routes wrapped in CORS and
// metrics collection.
func NewRouter(habits handlers.HabitStore) http.Handler {
	mux := http.NewServeMux()

	habitHandler := handlers.NewHabitHandler(habits)

	// Health check
	mux.HandleFunc("GET /api/health", handlers.Health)

	// Habits
	mux.HandleFunc("GET /api/habits", middleware.WithLogging(habitHandler.ListHabits))
	mux.HandleFunc("POST /api/habits", middleware.WithLogging(habitHandler.CreateHabit))
	mux.HandleFunc("PATCH /api/habits/{id}/log", middleware.WithLogging(habitHandler.LogToday))
	mux.HandleFunc("GET /api/habits/{id}/logs", middleware.WithLogging(habitHandler.WeekLogs))

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("habit-log API v1"))
	})

	return metrics.InstrumentHandler(middleware.CORS(mux))
}
