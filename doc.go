// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mood Diary API server.

Mood Diary is a single-user journal: log in, pick a mood from a fixed
ten-level vocabulary, add a comment and an answer to the question of the
day, and review history as text or as a score series for a bar chart. The
server is the local backend a desktop or web front end talks to.

# Starting the Server

	SESSION_SECRET=... go run .

Or with flags:

	go run . -p 3318 -d mood_diary.db -session-secret "..."

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): key for signing session tokens

Optional settings:

  - PORT (-p): Server port (default: 3318, bound to 127.0.0.1)
  - DATABASE_URL (-d): SQLite file or PostgreSQL URL (default: mood_diary.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PASSWORD_HASH (-hash): sha256 or bcrypt for new users (default: sha256)

# Architecture

  - diary: stores (users, entries, question of the day) and reports
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, sessions, CORS, JSON helpers
  - models: mood vocabulary and request/response types
  - auth: password hashing and session tokens
  - db: connection, dialects, schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
