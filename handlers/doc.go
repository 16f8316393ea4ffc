// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Mood Diary API.

# Handler Types

Each handler is a struct holding the diary store (UserHandler also keeps the
config for signing sessions):

  - UserHandler: registration and login
  - EntryHandler: saving entries, history text, score series
  - QuestionHandler: question of the day

Handlers are created via constructor functions:

	userHandler := handlers.NewUserHandler(store, cfg)
	entryHandler := handlers.NewEntryHandler(store)

ListMoods is a plain function; the vocabulary is fixed.

# Login and Registration

	POST /users/register → Register
	POST /users/login    → Login (returns session token)

A UserHandler lets one registration run at a time; a second concurrent
request gets 409. Failed logins always answer "Invalid username or
password", whether the user exists or not.

# Entries

	POST /entries         → SaveEntry (dated today)
	GET  /entries         → ListEntries
	GET  /entries/history → History (text/plain)
	GET  /entries/scores  → Scores

Entry routes need a session (see middleware.RequireSession).

# Errors

Validation failures map to 400, duplicates to 409, missing questions to
404. Storage failures are logged with their cause and answered with 500
"Database error".
*/
package handlers
