// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Password hashing schemes
const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

// SessionTTL is how long a login token stays valid.
const SessionTTL = 24 * time.Hour

var (
	ErrUnknownScheme = errors.New("unknown password hash scheme")
	ErrInvalidToken  = errors.New("invalid session token")

	// ErrPasswordTooLong is returned by SchemeBcrypt for passwords over
	// 72 bytes.
	ErrPasswordTooLong = errors.New("password too long for hash scheme")
)

// ValidScheme reports whether scheme names a supported hash.
func ValidScheme(scheme string) bool {
	return scheme == SchemeSHA256 || scheme == SchemeBcrypt
}

// HashPassword hashes a password with the given scheme.
//
// SchemeSHA256 is an unsalted, unstretched SHA-256 hex digest. It matches
// databases written by the original desktop diary and is weak against
// offline guessing; prefer SchemeBcrypt for new installs.
func HashPassword(scheme, password string) (string, error) {
	switch scheme {
	case SchemeSHA256:
		return sha256Hex(password), nil
	case SchemeBcrypt:
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return string(h), nil
	}
	return "", ErrUnknownScheme
}

// CheckPassword compares a password against a stored hash of either scheme.
// The scheme is detected from the hash itself.
func CheckPassword(hash, password string) bool {
	if isBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(hash), []byte(sha256Hex(password))) == 1
}

func sha256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

// SessionClaims is the JWT payload issued on login.
type SessionClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs an HS256 token for userID.
func IssueSessionToken(userID int64, secret string, now time.Time) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a token and returns the user id it carries.
func ParseSessionToken(token, secret string) (int64, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
