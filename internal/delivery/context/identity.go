package context

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated identity in context.
const KeyIdentity ContextKey = "identity"

// Identity is the request-scoped record of who is making the request.
// It is attached by the authentication middleware and trusted by every
// downstream check without re-verifying the token.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     entity.Role
	IsActive bool
}

// SetIdentity stores the identity on both echo.Context and the request's
// context.Context so handlers and services see the same principal.
func SetIdentity(c echo.Context, id *Identity) {
	c.Set(string(KeyIdentity), id)
	ctx := context.WithValue(c.Request().Context(), KeyIdentity, id)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentity extracts the identity from echo.Context.
// Returns nil when the request is anonymous.
func GetIdentity(c echo.Context) *Identity {
	if id, ok := c.Get(string(KeyIdentity)).(*Identity); ok {
		return id
	}

	return nil
}

// GetIdentityFromContext extracts the identity from a standard context.Context.
func GetIdentityFromContext(ctx context.Context) *Identity {
	if id, ok := ctx.Value(KeyIdentity).(*Identity); ok {
		return id
	}

	return nil
}
