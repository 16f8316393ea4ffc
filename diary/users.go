// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/mood-diary/auth"
	"github.com/danielhkuo/mood-diary/db"
	"github.com/danielhkuo/mood-diary/models"
)

// Register creates a user and returns its id. The username is trimmed;
// blank usernames or passwords fail with ErrInvalidInput.
func (s *Store) Register(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return 0, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(s.scheme, password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return 0, ErrPasswordTooLong
	}
	if err != nil {
		return 0, err
	}

	var userID int64
	err = s.conn.QueryRowContext(ctx, s.dialect.Rebind(`
		INSERT INTO users (username, password)
		VALUES (?, ?)
		RETURNING id
	`), username, hash).Scan(&userID)

	if db.IsUniqueViolation(err) {
		return 0, ErrUsernameTaken
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	return userID, nil
}

// Authenticate returns the user's id when the password matches. Unknown
// usernames and wrong passwords both report ok=false; err is reserved for
// storage failures.
func (s *Store) Authenticate(ctx context.Context, username, password string) (userID int64, ok bool, err error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return 0, false, nil
	}

	var u models.User
	err = s.conn.QueryRowContext(ctx, s.dialect.Rebind(`
		SELECT id, username, password FROM users WHERE username = ?
	`), username).Scan(&u.ID, &u.Username, &u.PasswordHash)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query user: %w", err)
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return 0, false, nil
	}
	return u.ID, true, nil
}
