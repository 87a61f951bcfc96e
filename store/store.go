// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/habit-log/metrics"
	"github.com/danielhkuo/habit-log/models"
)

// Documents is the habit collection the store reads and writes.
// FindByID must return an error wrapping ErrNotFound when no habit has
// the id. Save replaces the whole stored document.
type Documents interface {
	FindAll(ctx context.Context) ([]models.Habit, error)
	FindByID(ctx context.Context, id string) (models.Habit, error)
	Save(ctx context.Context, habit models.Habit) error
}

// Store owns every Habit. Callers only ever receive copies.
type Store struct {
	docs  Documents
	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock sets the source of "now". The returned time's location
// decides which calendar day is "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(docs Documents, opts ...Option) *Store {
	s := &Store{
		docs:  docs,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new habit with an empty log.
func (s *Store) Create(ctx context.Context, name string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrInvalidInput
	}

	habit := models.Habit{
		ID:   s.newID(),
		Name: name,
		Log:  []models.Date{},
	}
	if err := s.docs.Save(ctx, habit); err != nil {
		return models.Habit{}, storageError("save habit", err)
	}

	metrics.RecordHabitCreated()
	slog.Info("habit created", "habit_id", habit.ID, "name", habit.Name)

	return habit.Clone(), nil
}

// List returns every stored habit.
func (s *Store) List(ctx context.Context) ([]models.Habit, error) {
	habits, err := s.docs.FindAll(ctx)
	if err != nil {
		return nil, storageError("find habits", err)
	}

	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		out = append(out, normalize(h))
	}
	return out, nil
}

// AppendLogForToday records today as completed. Logging the same day
// twice leaves the log unchanged.
func (s *Store) AppendLogForToday(ctx context.Context, id string) (models.Habit, error) {
	habit, err := s.find(ctx, id)
	if err != nil {
		return models.Habit{}, err
	}

	today := models.DateOf(s.now())
	appended := !habit.HasLogged(today)
	if appended {
		habit.Log = append(habit.Log, today)
	}

	if err := s.docs.Save(ctx, habit); err != nil {
		return models.Habit{}, storageError("save habit", err)
	}

	metrics.RecordLogAppend(appended)
	slog.Info("habit logged", "habit_id", habit.ID, "date", today.String(), "appended", appended)

	return habit.Clone(), nil
}

// WeekLogs returns the log entries inside the Sunday-to-Saturday week
// containing ref. A zero ref means now.
func (s *Store) WeekLogs(ctx context.Context, id string, ref time.Time) ([]models.Date, error) {
	habit, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if ref.IsZero() {
		ref = s.now()
	}
	return WeekOf(ref).Filter(habit.Log), nil
}

// find loads a habit and deduplicates its log. Ids that are not UUIDs
// cannot exist and are reported as not found without a lookup.
func (s *Store) find(ctx context.Context, id string) (models.Habit, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Habit{}, ErrNotFound
	}

	habit, err := s.docs.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return models.Habit{}, ErrNotFound
	}
	if err != nil {
		return models.Habit{}, storageError("find habit", err)
	}
	return normalize(habit), nil
}

// normalize returns a copy of h whose log holds each day once, first
// occurrence kept. Documents written before entries were date-only can
// hold the same day twice.
func normalize(h models.Habit) models.Habit {
	out := models.Habit{ID: h.ID, Name: h.Name, Log: make([]models.Date, 0, len(h.Log))}
	for _, day := range h.Log {
		if !out.HasLogged(day) {
			out.Log = append(out.Log, day)
		}
	}
	return out
}
