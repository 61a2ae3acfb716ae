package auth

import (
	"testing"
	"time"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.TokenConfig{
		Secret:    "test_access_secret_key_very_long_for_testing",
		ExpiresIn: time.Hour,
	}
	cfg.RefreshToken = config.TokenConfig{
		Secret:    "test_refresh_secret_key_very_long_for_testing",
		ExpiresIn: 7 * 24 * time.Hour,
	}

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleReader,
	}
}

func TestJWTService_GenerateAndValidateTokenPair(t *testing.T) {
	jwtService := NewJWTService(newTestConfig())
	user := newTestUser()

	pair, err := jwtService.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, user.Username, accessClaims.Username)
	assert.Equal(t, entity.RoleReader, accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_CrossFamilyValidationFails(t *testing.T) {
	jwtService := NewJWTService(newTestConfig())

	pair, err := jwtService.GenerateTokenPair(newTestUser())
	require.NoError(t, err)

	// An access token must never verify against the refresh secret and vice versa.
	claims, err := jwtService.ValidateRefreshToken(pair.AccessToken)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))

	claims, err = jwtService.ValidateAccessToken(pair.RefreshToken)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.JWT.ExpiresIn = -time.Minute // already expired at issue time
	jwtService := NewJWTService(cfg)

	token, err := jwtService.GenerateAccessToken(newTestUser())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService := NewJWTService(newTestConfig())

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.JWT.Secret = ""
	jwtService := NewJWTService(cfg)
	user := newTestUser()

	// Access family is unusable without its secret.
	_, err := jwtService.GenerateAccessToken(user)
	assert.True(t, errors.Is(err, service.ErrSecretNotConfigured))
	_, err = jwtService.ValidateAccessToken("whatever")
	assert.True(t, errors.Is(err, service.ErrSecretNotConfigured))

	// The refresh family still works with its own secret.
	refreshToken, err := jwtService.GenerateRefreshToken(user)
	require.NoError(t, err)
	_, err = jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
}

func TestJWTService_Durations(t *testing.T) {
	jwtService := NewJWTService(newTestConfig())

	assert.Equal(t, time.Hour, jwtService.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, jwtService.RefreshTokenDuration())
}
