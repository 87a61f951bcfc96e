// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path/DSN or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - EnvFile: dotenv file loaded at startup (default: .env)

# CLI Flags

	-p     Server port
	-d     Database URL
	-t     Database type
	-env   Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ENV_FILE      → -env

CLI flags take precedence over environment variables, and environment
variables take precedence over the dotenv file. A missing dotenv file is
ignored.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is not provided
  - PORT is not a number
  - DATABASE_TYPE is neither sqlite nor postgres

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(store.New(db.NewCollection(conn)))
*/
package cliparse
