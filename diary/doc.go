// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package diary implements the mood diary's stores and reports, independent of
any front end.

# Store

	store := diary.NewStore(conn, db.SQLite,
		diary.WithPasswordScheme(auth.SchemeBcrypt),
	)

EnsureSchema must have run on conn first. All methods take a context and
run their statements synchronously on the connection pool.

# Credentials

	id, err := store.Register(ctx, "alice", "pw1")    // ErrUsernameTaken, ErrInvalidInput
	id, ok, err := store.Authenticate(ctx, "alice", "pw1")

Authenticate does not say whether the username or the password was wrong.

# Mood Entries

	err := store.SaveEntry(ctx, id, "Счастливое", "good day", "", time.Now())
	entries, err := store.ListEntries(ctx, id)

Entries are append-only. The "-" sentinel fails with ErrInvalidMood, which
also matches ErrInvalidInput. ListEntries sorts by date, then insertion.

# Question of the Day

	q, err := store.TodayQuestion(ctx)          // assigns on first call of the day
	q, found, err := store.PeekTodayQuestion(ctx) // read-only

AssignQuestion and PeekQuestion do the same for an explicit day and return
the stored models.Question row.

Each day gets at most one question. The first caller picks a random
unassigned catalog prompt and claims the day with an insert-if-absent; every
caller then rereads the claimed row.

# Reports

	series := diary.ScoreSeries(entries) // []models.ScorePoint
	text := diary.HistoryText(entries)

Both are pure functions over already-loaded entries.
*/
package diary
