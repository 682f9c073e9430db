package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")

	identity, err := Authenticate(db, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "alice", "alice@example.com", "password123")

	_, wrongPassword := Authenticate(db, "alice@example.com", "nope")
	_, unknownEmail := Authenticate(db, "bob@example.com", "password123")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestAuthenticateEmptyInput(t *testing.T) {
	db := newTestDB(t)

	_, err := Authenticate(db, "", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(db, "alice@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateSoftDeletedUser(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice", "alice@example.com", "password123")
	require.NoError(t, DeleteUser(db, user.ID))

	_, err := Authenticate(db, "alice@example.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateEmailIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "alice", "alice@example.com", "password123")

	_, err := Authenticate(db, "Alice@Example.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
