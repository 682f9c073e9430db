package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "alice@example.com", "Alice", "secret", 1)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.FullName)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "alice@example.com", "Alice", "secret", 1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other")
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, "alice@example.com", "Alice", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret")
	require.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-jwt", "secret")
	require.Error(t, err)
}
