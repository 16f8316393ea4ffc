// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session tokens.

# Passwords

Two schemes are supported:

	hash, err := auth.HashPassword(auth.SchemeSHA256, password)
	hash, err := auth.HashPassword(auth.SchemeBcrypt, password)
	ok := auth.CheckPassword(hash, password)

SchemeSHA256 is the default. It stores a bare SHA-256 hex digest (64 chars)
of the UTF-8 password, identical to what the original desktop diary wrote,
so existing mood_diary.db files keep working. It has no salt and no
stretching: identical passwords share a hash and offline guessing is cheap.
Use SchemeBcrypt (golang.org/x/crypto/bcrypt) for anything beyond a local
single-user install.

CheckPassword detects the scheme from the stored hash ($2a$/$2b$/$2y$ prefix
means bcrypt), so a database may mix both kinds of rows.

# Session Tokens

A successful login issues an HS256 JWT carrying the user id:

	token, err := auth.IssueSessionToken(userID, secret, time.Now())
	userID, err := auth.ParseSessionToken(token, secret)

Tokens expire after SessionTTL (24h). Any parse, signature, algorithm, or
expiry failure returns ErrInvalidToken.
*/
package auth
