package services

import (
	"testing"

	"social-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServices(t)

	user, err := s.auth.Register(testCtx(), "alice", "Alice", "alice@example.com", "s3cret", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "the password must be stored hashed")

	token, loggedIn, err := s.auth.Login(testCtx(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	// Email works as the login identifier too.
	_, _, err = s.auth.Login(testCtx(), "alice@example.com", "s3cret")
	assert.NoError(t, err)
}

func TestRegisterPasswordConfirmMustMatch(t *testing.T) {
	s := newTestServices(t)

	_, err := s.auth.Register(testCtx(), "alice", "Alice", "alice@example.com", "s3cret", "other")
	assert.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newTestServices(t)

	_, err := s.auth.Register(testCtx(), "alice", "Alice", "alice@example.com", "s3cret", "s3cret")
	require.NoError(t, err)

	_, err = s.auth.Register(testCtx(), "alice", "Alice Two", "alice2@example.com", "s3cret", "s3cret")
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServices(t)

	_, err := s.auth.Register(testCtx(), "alice", "Alice", "alice@example.com", "s3cret", "s3cret")
	require.NoError(t, err)

	_, _, err = s.auth.Login(testCtx(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	s := newTestServices(t)

	_, _, err := s.auth.Login(testCtx(), "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
