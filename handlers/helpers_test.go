// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"

	"github.com/danielhkuo/mood-diary/db"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/testutil"
)

// testDay is the "today" every handler test runs on
const testDay = "2026-10-17"

func setupTestStore(t *testing.T) *diary.Store {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return diary.NewStore(conn, db.SQLite, diary.WithClock(testutil.FixedClock(testDay)))
}

func sessionHeaders(t *testing.T, userID int64) map[string]string {
	t.Helper()
	return map[string]string{"X-Session-Token": testutil.SessionToken(t, userID)}
}
