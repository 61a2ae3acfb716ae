// Package middleware contains the HTTP guards that gate access to routes.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides the authentication gate: token verification and
// identity attachment. Authorization decisions live in RoleMiddleware.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo, logger: logger}
}

// Authenticate validates the access token and attaches the caller's
// identity to the request. A missing token and a bad token are reported
// with distinct error codes.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := service.ExtractTokenFromHeader(c.Request().Header)
		if tokenString == "" {
			return response.Error(c, http.StatusUnauthorized, "ACCESS_DENIED", "Access denied. No token provided.")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			m.logger.Debug("Token verification failed", slog.Any("error", err))

			return response.Fail(c, http.StatusUnauthorized, response.Envelope{
				Error:   "INVALID_TOKEN",
				Message: "Invalid token.",
				Details: tokenFailureReason(err),
			})
		}

		deliverycontext.SetIdentity(c, &deliverycontext.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
			IsActive: true,
		})

		m.logger.Debug("Request authenticated",
			slog.Any("userID", claims.UserID),
			slog.String("role", claims.Role.String()))

		return next(c)
	}
}

// OptionalAuth attaches a fresh identity when a valid token is presented
// but never blocks the request. Any failure leaves the request anonymous.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := service.ExtractTokenFromHeader(c.Request().Header)
		if tokenString == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			m.logger.Debug("Optional auth token rejected", slog.Any("error", err))

			return next(c)
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Debug("Optional auth user lookup failed", slog.Any("userID", claims.UserID), slog.Any("error", err))

			return next(c)
		}

		deliverycontext.SetIdentity(c, &deliverycontext.Identity{
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: user.IsActive,
		})

		return next(c)
	}
}

// EnsureAuthenticated rejects requests that reached this point without an
// attached identity. It backstops route wiring mistakes rather than doing
// any verification itself.
func (m *AuthMiddleware) EnsureAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetIdentity(c) == nil {
			return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
		}

		return next(c)
	}
}

// LoadFreshUser re-reads the authenticated user from the store so role
// changes and deactivations made after token issue take effect on this
// request. Deactivated accounts are not rejected here; the flag is only
// surfaced on the identity.
func (m *AuthMiddleware) LoadFreshUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := deliverycontext.GetIdentity(c)
		if identity == nil {
			return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Error(c, http.StatusUnauthorized, "USER_NOT_FOUND", "User not found.")
			}

			m.logger.Error("Failed to refresh user from store", slog.Any("userID", identity.UserID), slog.Any("error", err))

			return response.Error(c, http.StatusInternalServerError, "SERVER_ERROR", "Internal server error.")
		}

		deliverycontext.SetIdentity(c, &deliverycontext.Identity{
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
			IsActive: user.IsActive,
		})

		return next(c)
	}
}

// Required is the standard guard chain for protected routes: verify the
// token, then refresh the identity from the store.
func (m *AuthMiddleware) Required() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{m.Authenticate, m.LoadFreshUser}
}

// tokenFailureReason maps a verification error onto the short reason string
// surfaced in the denial envelope.
func tokenFailureReason(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, service.ErrSecretNotConfigured):
		return "token verification unavailable"
	default:
		return "token verification failed"
	}
}
