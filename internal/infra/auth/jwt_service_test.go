package auth

import (
	"testing"
	"time"

	"rewards/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"user", "merchant"}

	token, err := jwtService.GenerateAccessToken(userID, roles, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "rewards", claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("another_secret_key_that_does_not_match"))
	require.NoError(t, err)

	userID := uuid.New()

	expired, err := jwtService.GenerateAccessToken(userID, nil, -time.Minute)
	require.NoError(t, err)

	foreign, err := other.GenerateAccessToken(userID, nil, time.Hour)
	require.NoError(t, err)

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "refresh",
	}).SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "merchant-42",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "access",
	}).SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID.String(),
		"type": "access",
	}).SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not.a.token"},
		{"Expired", expired},
		{"Wrong secret", foreign},
		{"Refresh token", refresh},
		{"Subject is not a UUID", badSubject},
		{"No expiry", noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
