// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and habit storage.

# Connecting

Open picks the driver by database type ("sqlite" or "postgres"):

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

SQLite uses modernc.org/sqlite (no cgo); postgres uses lib/pq.

# Schema Creation

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - habit: one row per habit document (id, name, log, version, created_at)

The log column is a JSON array of "YYYY-MM-DD" strings. version counts
saves and is never exposed through the API.

# Collection

Collection implements store.Documents:

	habits := store.New(db.NewCollection(conn))

Save is a whole-document upsert, so concurrent saves of the same habit
resolve as last writer wins.
*/
package db
