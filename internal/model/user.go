package model

import "github.com/google/uuid"

// User is a registered account. Rows are created on registration and
// never updated or deleted.
type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`

	// PasswordHash is the hex SHA-256 digest stored in the password
	// column; the plain password is never persisted.
	PasswordHash string `db:"password"`
}

// Session is the explicit login context threaded through the UI.
// It replaces any ambient "logged in" global: whoever needs to know
// the current user receives a Session value.
type Session struct {
	ID            string
	Authenticated bool
	Username      string
}

// NewSession returns an authenticated session for username.
func NewSession(username string) Session {
	return Session{
		ID:            uuid.New().String(),
		Authenticated: true,
		Username:      username,
	}
}

// AnonymousSession returns the unauthenticated session used before
// login and after logout.
func AnonymousSession() Session {
	return Session{}
}
