// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/mood-diary/models"
)

// SaveEntry appends one mood entry for userID on the given day.
// The mood must be one of models.Moods(); the sentinel is rejected.
func (s *Store) SaveEntry(ctx context.Context, userID int64, mood, comment, answer string, date time.Time) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	m, ok := models.ParseMood(mood)
	if !ok || !m.Valid() {
		return ErrInvalidMood
	}

	_, err := s.conn.ExecContext(ctx, s.dialect.Rebind(`
		INSERT INTO moods (user_id, mood, comment, question_answer, date)
		VALUES (?, ?, ?, ?, ?)
	`), userID, m.String(), comment, answer, date.Format(models.DateLayout))
	if err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}

	return nil
}

// ListEntries returns all of a user's entries, oldest day first and in
// insertion order within a day.
func (s *Store) ListEntries(ctx context.Context, userID int64) ([]models.MoodEntry, error) {
	rows, err := s.conn.QueryContext(ctx, s.dialect.Rebind(`
		SELECT id, user_id, mood, COALESCE(comment, ''), COALESCE(question_answer, ''), date
		FROM moods
		WHERE user_id = ?
		ORDER BY date ASC, id ASC
	`), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	entries := []models.MoodEntry{}
	for rows.Next() {
		var e models.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &e.Comment, &e.QuestionAnswer, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mood entries: %w", err)
	}

	return entries, nil
}
