package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Paul0Junior/checklist-eng/internal/auth"
	"github.com/Paul0Junior/checklist-eng/internal/model"
)

// Expected credential outcomes. These are result values, not failures:
// callers surface them to the user and let them retry.
var (
	// ErrUsernameTaken is returned when registering a username that
	// already has an account.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned when no user matches the
	// supplied username and password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound is returned by lookups for a username that has
	// no account.
	ErrUserNotFound = errors.New("user not found")
)

// RegisterUser hashes the password and inserts a new account row.
// Returns ErrUsernameTaken when the username already exists; the
// existing row (and its stored hash) is left untouched.
func (s *SQLiteStore) RegisterUser(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username must not be empty")
	}

	var count int
	err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM users WHERE username = ?", username,
	)
	if err != nil {
		return fmt.Errorf("checking username %s: %w", username, err)
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, auth.HashPassword(password),
	)
	if err != nil {
		return fmt.Errorf("registering user %s: %w", username, err)
	}
	return nil
}

// Authenticate hashes the supplied password and looks up a row
// matching both username and hash exactly. Returns
// ErrInvalidCredentials on any mismatch; the caller cannot tell an
// unknown username from a wrong password, and does not need to.
func (s *SQLiteStore) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT id, username, password FROM users WHERE username = ? AND password = ?",
		username, auth.HashPassword(password),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticating user %s: %w", username, err)
	}
	return &user, nil
}

// GetUserByUsername returns the account row for username, or
// ErrUserNotFound when no such account exists.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT id, username, password FROM users WHERE username = ?",
		username,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user %s: %w", username, err)
	}
	return &user, nil
}
