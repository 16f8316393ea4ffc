// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// QuestionCatalog is the fixed set of "question of the day" prompts seeded
// on first run.
var QuestionCatalog = []string{
	"Что сегодня сделало вас счастливым?",
	"Какое ваше главное достижение сегодня?",
	"Что вы могли бы улучшить в своем дне?",
	"Какое ваше любимое воспоминание?",
	"Что вас сегодня вдохновляет?",
	"Как вам погода сегодня на улице?",
	"Что вызывало у вас радость сегодня?",
	"Что новое вы узнали за сегодня?",
	"Что вам сегодня снилось?",
	"Из-за чего вы сегодня расстраивались?",
	"Что сегодня вас заставило улыбнуться?",
	"Какая сегодняшняя ситуация запоминалась вам?",
	"Что сегодня удивило?",
	"Какой урок вы извлекли из сегодняшнего дня?",
	"Какая часть вашего дня была самой продуктивной?",
	"Чем вы гордитесь в конце дня?",
}

// EnsureSchema creates all tables and seeds the question catalog.
// Safe to call multiple times - uses IF NOT EXISTS and ON CONFLICT DO NOTHING.
func EnsureSchema(ctx context.Context, conn *sql.DB, d Dialect) error {
	var statements []string
	switch d {
	case SQLite:
		if err := migrateLegacyQuestions(ctx, conn); err != nil {
			return err
		}
		statements = slices.Concat(sqliteSchema, sqliteLegacyFixups)
	case Postgres:
		statements = postgresSchema
	default:
		return fmt.Errorf("unsupported dialect %q", d)
	}

	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	seed := d.Rebind(`
		INSERT INTO questions (question, date)
		VALUES (?, '')
		ON CONFLICT DO NOTHING
	`)
	for _, q := range QuestionCatalog {
		if _, err := conn.ExecContext(ctx, seed, q); err != nil {
			return fmt.Errorf("failed to seed question catalog: %w", err)
		}
	}

	return nil
}

// migrateLegacyQuestions rebuilds a questions table created by the desktop
// diary, which was keyed by date alone and so kept a single unassigned
// prompt. Rows are copied into the current table; seeding then restores the
// rest of the catalog.
func migrateLegacyQuestions(ctx context.Context, conn *sql.DB) error {
	var ddl string
	err := conn.QueryRowContext(ctx, `
		SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'questions'
	`).Scan(&ddl)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect questions table: %w", err)
	}
	if strings.Contains(ddl, "UNIQUE (question, date)") {
		return nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin questions migration: %w", err)
	}
	defer tx.Rollback()

	steps := []string{
		`ALTER TABLE questions RENAME TO questions_legacy`,
		sqliteQuestionsTable,
		// WHERE true keeps SQLite from reading ON CONFLICT as a join clause
		`INSERT INTO questions (question, date)
			SELECT question, date FROM questions_legacy WHERE true
			ON CONFLICT DO NOTHING`,
		`DROP TABLE questions_legacy`,
	}
	for _, stmt := range steps {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate questions table: %w", err)
		}
	}

	return tx.Commit()
}

const sqliteQuestionsTable = `CREATE TABLE IF NOT EXISTS questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		UNIQUE (question, date)
	)`

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS moods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		mood TEXT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		question_answer TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_moods_user_date ON moods(user_id, date)`,
	sqliteQuestionsTable,
	// One assignment per day; unassigned catalog rows share the empty date.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_questions_date ON questions(date) WHERE date <> ''`,
}

// sqliteLegacyFixups rewrite desktop-era DD-MM-YYYY entry dates as
// YYYY-MM-DD so entries sort by day.
var sqliteLegacyFixups = []string{
	`UPDATE moods
		SET date = substr(date, 7, 4) || '-' || substr(date, 4, 2) || '-' || substr(date, 1, 2)
		WHERE date GLOB '[0-9][0-9]-[0-9][0-9]-[0-9][0-9][0-9][0-9]'`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS moods (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		mood TEXT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		question_answer TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_moods_user_date ON moods(user_id, date)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id BIGSERIAL PRIMARY KEY,
		question TEXT NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		UNIQUE (question, date)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_questions_date ON questions(date) WHERE date <> ''`,
}
