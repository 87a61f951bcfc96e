// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is shared by sqlite and postgres, so it sticks to types
// both understand. log holds a JSON array of "YYYY-MM-DD" strings and
// created_at is Unix nanoseconds.
const schema = `
CREATE TABLE IF NOT EXISTS habit (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL CHECK (name <> ''),
    log TEXT NOT NULL DEFAULT '[]',
    version BIGINT NOT NULL DEFAULT 0,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_habit_created_at ON habit(created_at, id);
`
