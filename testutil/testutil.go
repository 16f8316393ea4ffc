// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/mood-diary/auth"
	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/db"
)

// TestSessionSecret signs session tokens in tests
const TestSessionSecret = "test-session-secret"

// SetupTestDB creates a fresh SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "mood_diary_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.EnsureSchema(context.Background(), conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// desktopSchema is the layout the desktop diary created in mood_diary.db.
var desktopSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS moods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		mood TEXT NOT NULL,
		comment TEXT,
		question_answer TEXT,
		date TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		date TEXT NOT NULL UNIQUE
	)`,
}

// SetupDesktopDB creates a SQLite database laid out and seeded the way the
// desktop diary left it. EnsureSchema has not been run on it.
func SetupDesktopDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "mood_diary.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	for _, stmt := range desktopSchema {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			t.Fatalf("Failed to create desktop schema: %v", err)
		}
	}
	// The desktop seed: date is unique, so only the first prompt sticks
	for _, q := range db.QuestionCatalog {
		if _, err := conn.Exec(`INSERT OR IGNORE INTO questions (question, date) VALUES (?, '')`, q); err != nil {
			conn.Close()
			t.Fatalf("Failed to seed desktop questions: %v", err)
		}
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    "mood_diary_test.db",
		DatabaseType:   db.SQLite,
		SessionSecret:  TestSessionSecret,
		PasswordScheme: auth.SchemeSHA256,
	}
}

// FixedClock returns a clock pinned to the given day at noon local time
func FixedClock(date string) func() time.Time {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		panic(err)
	}
	noon := day.Add(12 * time.Hour)
	return func() time.Time { return noon }
}

// CreateTestUser inserts a user directly and returns its id
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) int64 {
	t.Helper()

	hash, err := auth.HashPassword(auth.SchemeSHA256, password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	var userID int64
	err = conn.QueryRow(`
		INSERT INTO users (username, password)
		VALUES (?, ?)
		RETURNING id
	`, username, hash).Scan(&userID)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestEntry inserts a mood row directly, bypassing validation
func CreateTestEntry(t *testing.T, conn *sql.DB, userID int64, mood, comment, date string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO moods (user_id, mood, comment, question_answer, date)
		VALUES (?, ?, ?, '', ?)
	`, userID, mood, comment, date)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}
}

// SessionToken issues a valid session token for userID
func SessionToken(t *testing.T, userID int64) string {
	t.Helper()

	token, err := auth.IssueSessionToken(userID, TestSessionSecret, time.Now())
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
