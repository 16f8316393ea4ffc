// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diary

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/mood-diary/auth"
	"github.com/danielhkuo/mood-diary/db"
	"github.com/danielhkuo/mood-diary/models"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidMood   = fmt.Errorf("%w: a mood must be selected", ErrInvalidInput)
	ErrUsernameTaken = errors.New("username already taken")
	ErrNoQuestion    = errors.New("no question available")

	// ErrPasswordTooLong reports a password the configured hash scheme
	// cannot take (over 72 bytes under bcrypt).
	ErrPasswordTooLong = fmt.Errorf("%w: password is too long", ErrInvalidInput)
)

// Store is the diary's persistence layer: users, mood entries, and the
// question of the day. Schema must already exist (db.EnsureSchema).
type Store struct {
	conn    *sql.DB
	dialect db.Dialect
	scheme  string
	now     func() time.Time
}

type Option func(*Store)

// WithClock overrides time.Now, which decides "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithPasswordScheme selects the hash used for new registrations.
// Defaults to auth.SchemeSHA256.
func WithPasswordScheme(scheme string) Option {
	return func(s *Store) { s.scheme = scheme }
}

func NewStore(conn *sql.DB, dialect db.Dialect, opts ...Option) *Store {
	s := &Store{
		conn:    conn,
		dialect: dialect,
		scheme:  auth.SchemeSHA256,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current calendar day in local time.
func (s *Store) Today() string {
	return s.now().Format(models.DateLayout)
}

// Now returns the store's clock reading.
func (s *Store) Now() time.Time {
	return s.now()
}
