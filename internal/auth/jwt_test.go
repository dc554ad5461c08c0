package auth

import (
	"testing"
	"time"

	"github.com/rajeev8964/thepersonalbuddy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "access-test-secret",
		RefreshSecret: "refresh-test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 168 * time.Hour,
		Issuer:        "thepersonalbuddy",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateAccessToken(cfg, "user-1", "user@example.com")
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "thepersonalbuddy", claims.Issuer)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateAccessToken(cfg, "user-1", "user@example.com")
	require.NoError(t, err)

	other := testConfig()
	other.AccessSecret = "something-else"
	_, err = ParseAccessToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.AccessExpiry = -time.Minute
	token, err := GenerateAccessToken(cfg, "user-1", "user@example.com")
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateRefreshToken(cfg, "user-1")
	require.NoError(t, err)

	subject, err := ParseRefreshToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestRefreshTokenNotValidAsAccess(t *testing.T) {
	cfg := testConfig()
	refresh, err := GenerateRefreshToken(cfg, "user-1")
	require.NoError(t, err)

	// Signed with the refresh secret, so the access parser must reject it.
	_, err = ParseAccessToken(cfg, refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
