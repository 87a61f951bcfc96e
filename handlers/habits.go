// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/habit-log/middleware"
	"github.com/danielhkuo/habit-log/models"
	"github.com/danielhkuo/habit-log/store"
)

// HabitStore is the subset of store.Store the handlers need.
type HabitStore interface {
	Create(ctx context.Context, name string) (models.Habit, error)
	List(ctx context.Context) ([]models.Habit, error)
	AppendLogForToday(ctx context.Context, id string) (models.Habit, error)
	WeekLogs(ctx context.Context, id string, ref time.Time) ([]models.Date, error)
}

type HabitHandler struct {
	store HabitStore
}

func NewHabitHandler(store HabitStore) *HabitHandler {
	return &HabitHandler{store: store}
}

// ListHabits handles GET /api/habits
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.store.List(r.Context())
	if err != nil {
		writeStoreError(w, "failed to list habits", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, habits)
}

// CreateHabit handles POST /api/habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	habit, err := h.store.Create(r.Context(), req.Name)
	if err != nil {
		writeStoreError(w, "failed to create habit", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, habit)
}

// LogToday handles PATCH /api/habits/{id}/log
// Marks the habit completed for today; repeating it the same day is a no-op
func (h *HabitHandler) LogToday(w http.ResponseWriter, r *http.Request) {
	habit, err := h.store.AppendLogForToday(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, "failed to log habit", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, habit)
}

// WeekLogs handles GET /api/habits/{id}/logs
// Returns the log entries of the current Sunday-Saturday week, or of the
// week containing ?date=YYYY-MM-DD
func (h *HabitHandler) WeekLogs(w http.ResponseWriter, r *http.Request) {
	var ref time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err := models.ParseDate(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		ref = day.In(time.Local)
	}

	logs, err := h.store.WeekLogs(r.Context(), r.PathValue("id"), ref)
	if err != nil {
		writeStoreError(w, "failed to load week logs", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, logs)
}

// Health handles GET /api/health
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// writeStoreError maps store error kinds to HTTP responses.
func writeStoreError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, store.ErrInvalidInput.Error())
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, store.ErrNotFound.Error())
	default:
		slog.Error(msg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, store.ErrStorageUnavailable.Error())
	}
}
