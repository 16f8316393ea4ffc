// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/mood-diary/models"
)

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TodayQuestion returns the question assigned to today, assigning a random
// catalog question first if the day has none yet.
func (s *Store) TodayQuestion(ctx context.Context) (string, error) {
	q, err := s.AssignQuestion(ctx, s.Today())
	return q.Question, err
}

// AssignQuestion returns the question for date (YYYY-MM-DD), assigning one
// if needed.
//
// The assignment is insert-if-absent followed by a reread, so concurrent
// callers (even in separate processes) all return whichever row won.
func (s *Store) AssignQuestion(ctx context.Context, date string) (models.Question, error) {
	conn, err := s.conn.Conn(ctx)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	q, err := s.questionFor(ctx, conn, date)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, fmt.Errorf("failed to query question for %s: %w", date, err)
	}

	var pick string
	err = conn.QueryRowContext(ctx, `
		SELECT question FROM questions
		WHERE date = ''
		ORDER BY RANDOM()
		LIMIT 1
	`).Scan(&pick)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNoQuestion
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to pick question: %w", err)
	}

	_, err = conn.ExecContext(ctx, s.dialect.Rebind(`
		INSERT INTO questions (question, date)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`), pick, date)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to assign question for %s: %w", date, err)
	}

	q, err = s.questionFor(ctx, conn, date)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to reread question for %s: %w", date, err)
	}
	return q, nil
}

// PeekTodayQuestion returns today's question without assigning one.
func (s *Store) PeekTodayQuestion(ctx context.Context) (string, bool, error) {
	q, found, err := s.PeekQuestion(ctx, s.Today())
	return q.Question, found, err
}

// PeekQuestion returns the question assigned to date, if any.
func (s *Store) PeekQuestion(ctx context.Context, date string) (models.Question, bool, error) {
	q, err := s.questionFor(ctx, s.conn, date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, false, nil
	}
	if err != nil {
		return models.Question{}, false, fmt.Errorf("failed to query question for %s: %w", date, err)
	}
	return q, true, nil
}

func (s *Store) questionFor(ctx context.Context, qr queryer, date string) (models.Question, error) {
	var q models.Question
	err := qr.QueryRowContext(ctx, s.dialect.Rebind(`
		SELECT id, question, date FROM questions WHERE date = ?
	`), date).Scan(&q.ID, &q.Question, &q.Date)
	return q, err
}
