package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Paul0Junior/checklist-eng/internal/store"
	"github.com/Paul0Junior/checklist-eng/tests/testutil"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	require.NoError(t, s.RegisterUser(ctx, "alice", "secret123"))

	user, err := s.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "secret123", user.PasswordHash)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	require.NoError(t, s.RegisterUser(ctx, "alice", "secret123"))

	_, err := s.Authenticate(ctx, "alice", "wrongpass")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	_, err := s.Authenticate(ctx, "nobody", "whatever")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)
}

// A duplicate registration is an expected outcome and must leave the
// original account untouched, whatever password it carries.
func TestRegisterDuplicateKeepsOriginalHash(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	require.NoError(t, s.RegisterUser(ctx, "alice", "secret123"))

	err := s.RegisterUser(ctx, "alice", "other-password")
	require.ErrorIs(t, err, store.ErrUsernameTaken)

	// The first password still authenticates; the second never took.
	_, err = s.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, "alice", "other-password")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestGetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	require.NoError(t, s.RegisterUser(ctx, "alice", "secret123"))

	user, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = s.GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestRegisterEmptyUsername(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	require.Error(t, s.RegisterUser(ctx, "   ", "secret123"))
}
