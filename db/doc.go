// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the diary store and manages its schema.

# Opening

	conn, err := db.Open(db.SQLite, "mood_diary.db")

SQLite is the default and uses the pure-Go modernc.org/sqlite driver. The
pool is capped at one connection with a 5s busy timeout and foreign keys on.
PostgreSQL (db.Postgres) goes through github.com/lib/pq.

# Schema Creation

EnsureSchema initializes all tables and seeds the question catalog:

	if err := db.EnsureSchema(ctx, conn, db.SQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for tables and indexes and
ON CONFLICT DO NOTHING for the seed rows.

# Tables

  - users: id, username (unique), password (hash)
  - moods: append-only entries (user_id, mood, comment, question_answer, date)
  - questions: catalog prompts; date is '' until a day claims the prompt

# Relationships

	users 1──* moods

# Indexes

  - moods.(user_id, date)
  - questions.(question, date) (unique)
  - questions.date where date <> '' (unique, one question per day)

# Dialects

Queries are written with ? placeholders. Dialect.Rebind converts them to
$1, $2, ... for PostgreSQL. IsUniqueViolation recognises duplicate-key errors
from either driver.
*/
package db
