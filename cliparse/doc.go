// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or PostgreSQL URL (default: mood_diary.db)
  - DatabaseType: db.SQLite or db.Postgres (default: sqlite)
  - PasswordScheme: hash for new users, sha256 or bcrypt (default: sha256)
  - SessionSecret: HMAC key for session tokens (required)

# CLI Flags

	-p                Server port
	-d                Database path or URL
	-t                Database type
	-hash             Password hash scheme
	-session-secret   Session signing secret

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	PASSWORD_HASH  → -hash
	SESSION_SECRET → -session-secret

CLI flags take precedence over environment variables. main loads a .env file
(github.com/joho/godotenv) before calling ParseFlags, so values there act as
environment variables.

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is missing
  - PORT is not a number
  - the database type or hash scheme is unknown
*/
package cliparse
