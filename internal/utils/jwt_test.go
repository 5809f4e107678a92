// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateAccessToken(42, "alice", true, false, 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsStaff)
	assert.False(t, claims.IsMerchant)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateRefreshToken(42, 24)
	require.NoError(t, err)

	userID, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateRefreshToken(42, 24)
	require.NoError(t, err)

	// Both kinds are signed with the same key; the type claim must keep a
	// refresh token from authenticating a request.
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateAccessToken(42, "alice", false, false, 1)
	require.NoError(t, err)

	_, err = ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateAccessToken(42, "alice", false, false, 1)
	require.NoError(t, err)

	SetJWTSecret("another-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
