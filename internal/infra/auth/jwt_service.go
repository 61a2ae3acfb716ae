// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService. Either secret may be left
// empty; the corresponding token family then fails with ErrSecretNotConfigured
// on use, so a deployment that never refreshes can run without a refresh secret.
func NewJWTService(cfg *config.Config) service.TokenService {
	return &jwtService{
		accessSecret:  cfg.JWT.Secret,
		refreshSecret: cfg.RefreshToken.Secret,
		accessTTL:     cfg.JWT.ExpiresIn,
		refreshTTL:    cfg.RefreshToken.ExpiresIn,
	}
}

// GenerateAccessToken issues a short-lived access token for the user.
func (s *jwtService) GenerateAccessToken(user *entity.User) (string, error) {
	return s.generateToken(user, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
}

// GenerateRefreshToken issues a longer-lived refresh token for the user.
func (s *jwtService) GenerateRefreshToken(user *entity.User) (string, error) {
	return s.generateToken(user, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
}

// GenerateTokenPair composes the two independent issue calls.
func (s *jwtService) GenerateTokenPair(user *entity.User) (*service.TokenPair, error) {
	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken checks an access token against the access secret.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken checks a refresh token against the refresh secret.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// AccessTokenDuration returns the configured access token time-to-live.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured refresh token time-to-live.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with the user's identity claims.
func (s *jwtService) generateToken(user *entity.User, ttl time.Duration, secret, tokenType string) (string, error) {
	if secret == "" {
		return "", errors.Wrapf(service.ErrSecretNotConfigured, "%s token", tokenType)
	}

	now := time.Now()
	claims := &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// validateToken parses and verifies a token string against one family's secret.
func (s *jwtService) validateToken(tokenString, secret, wantType string) (*service.Claims, error) {
	if secret == "" {
		return nil, errors.Wrapf(service.ErrSecretNotConfigured, "%s token", wantType)
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	// A token presented to the wrong family's verifier must never pass, even
	// if the secrets happen to be identical.
	if claims.Type != wantType {
		return nil, errors.Wrapf(service.ErrTokenInvalid, "expected %s token, got %s", wantType, claims.Type)
	}

	return claims, nil
}
