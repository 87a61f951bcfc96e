// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/habit-log/models"
	"github.com/danielhkuo/habit-log/store"
)

// Collection stores each habit as one row holding the whole document.
// It implements store.Documents for both sqlite and postgres.
type Collection struct {
	db  *sql.DB
	now func() time.Time
}

func NewCollection(db *sql.DB) *Collection {
	return &Collection{db: db, now: time.Now}
}

// FindAll returns every habit in creation order.
func (c *Collection) FindAll(ctx context.Context) ([]models.Habit, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, log
		FROM habit
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var habit models.Habit
		var rawLog string
		if err := rows.Scan(&habit.ID, &habit.Name, &rawLog); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		if habit.Log, err = decodeLog(rawLog); err != nil {
			return nil, fmt.Errorf("habit %s: %w", habit.ID, err)
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}

	return habits, nil
}

// FindByID returns the habit with the given id, or an error wrapping
// store.ErrNotFound.
func (c *Collection) FindByID(ctx context.Context, id string) (models.Habit, error) {
	var habit models.Habit
	var rawLog string
	err := c.db.QueryRowContext(ctx, `
		SELECT id, name, log FROM habit WHERE id = $1
	`, id).Scan(&habit.ID, &habit.Name, &rawLog)

	if err == sql.ErrNoRows {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to query habit: %w", err)
	}

	if habit.Log, err = decodeLog(rawLog); err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, err)
	}
	return habit, nil
}

// Save writes the whole document, replacing any stored version.
// created_at is only set on first insert.
func (c *Collection) Save(ctx context.Context, habit models.Habit) error {
	rawLog, err := encodeLog(habit.Log)
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO habit (id, name, log, version, created_at)
		VALUES ($1, $2, $3, 0, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			log = excluded.log,
			version = habit.version + 1
	`, habit.ID, habit.Name, rawLog, c.now().UnixNano())

	if err != nil {
		return fmt.Errorf("failed to save habit: %w", err)
	}
	return nil
}

func encodeLog(log []models.Date) (string, error) {
	if log == nil {
		log = []models.Date{}
	}
	b, err := json.Marshal(log)
	if err != nil {
		return "", fmt.Errorf("failed to encode log: %w", err)
	}
	return string(b), nil
}

func decodeLog(raw string) ([]models.Date, error) {
	log := []models.Date{}
	if raw == "" {
		return log, nil
	}
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil, fmt.Errorf("malformed log: %w", err)
	}
	return log, nil
}
