package service

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"blog/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token family names carried in the claims so a token can never be replayed
// against the other family's verification path.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Domain-specific token errors.
var (
	// ErrSecretNotConfigured is returned when the secret for the requested
	// token family is missing. This is a deployment misconfiguration.
	ErrSecretNotConfigured = errors.New("token secret is not configured")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned when a token's signature or structure is malformed.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims defines the custom claims carried by both token families.
type Claims struct {
	UserID   uuid.UUID   `json:"uid"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	Type     string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair bundles one freshly issued token of each family.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService defines the interface for generating and validating JWTs.
// Access and refresh tokens form two independent families: each is signed
// and verified only with its own secret.
type TokenService interface {
	// GenerateAccessToken issues a short-lived access token for the user.
	GenerateAccessToken(user *entity.User) (string, error)

	// GenerateRefreshToken issues a longer-lived refresh token for the user.
	GenerateRefreshToken(user *entity.User) (string, error)

	// GenerateTokenPair composes the two independent issue calls.
	GenerateTokenPair(user *entity.User) (*TokenPair, error)

	// ValidateAccessToken checks an access token against the access secret.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token against the refresh secret.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token time-to-live.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token time-to-live.
	RefreshTokenDuration() time.Duration
}

// ExtractTokenFromHeader parses a bearer-scheme Authorization header and
// returns the raw token. An absent or malformed header yields "" rather than
// an error; the caller decides whether a missing token is fatal.
func ExtractTokenFromHeader(headers http.Header) string {
	authHeader := headers.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
