package middleware

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrOwnerNotFound is returned by an OwnerFetcher when the resource does
// not exist.
var ErrOwnerNotFound = errors.New("resource not found")

// OwnerFetcher resolves the owning user of a resource by its ID.
type OwnerFetcher func(ctx context.Context, resourceID uuid.UUID) (uuid.UUID, error)

// RoleMiddleware provides the authorization guards. Ownership checks
// dispatch through a static resource table built at construction.
type RoleMiddleware struct {
	fetchers map[string]OwnerFetcher
	logger   *slog.Logger
}

// NewRoleMiddleware is the constructor for RoleMiddleware. The ownership
// dispatch table is fixed here; there is no per-request registration.
func NewRoleMiddleware(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	logger *slog.Logger,
) *RoleMiddleware {
	return &RoleMiddleware{
		logger: logger,
		fetchers: map[string]OwnerFetcher{
			"post": func(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
				post, err := postRepo.FindByID(ctx, id)
				if err != nil {
					if errors.Is(err, repository.ErrPostNotFound) {
						return uuid.Nil, ErrOwnerNotFound
					}

					return uuid.Nil, err
				}

				return post.OwnerID(), nil
			},
			"comment": func(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
				comment, err := commentRepo.FindByID(ctx, id)
				if err != nil {
					if errors.Is(err, repository.ErrCommentNotFound) {
						return uuid.Nil, ErrOwnerNotFound
					}

					return uuid.Nil, err
				}

				return comment.OwnerID(), nil
			},
			// A user resource is owned by itself.
			"user": func(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
				user, err := userRepo.FindByID(ctx, id)
				if err != nil {
					if errors.Is(err, repository.ErrUserNotFound) {
						return uuid.Nil, ErrOwnerNotFound
					}

					return uuid.Nil, err
				}

				return user.ID, nil
			},
		},
	}
}

// RequireMinRole admits any caller whose role sits at or above min in the
// role hierarchy.
func (m *RoleMiddleware) RequireMinRole(min entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
			}

			if !identity.Role.AtLeast(min) {
				return response.Fail(c, http.StatusForbidden, response.Envelope{
					Error:        "INSUFFICIENT_ROLE",
					Message:      "Your role does not grant access to this resource.",
					RequiredRole: min.String(),
					YourRole:     identity.Role.String(),
				})
			}

			return next(c)
		}
	}
}

// RequireRoles admits only callers whose role is exactly one of the given
// roles; the hierarchy is ignored.
func (m *RoleMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
			}

			if !allowed.Contains(identity.Role) {
				return response.Fail(c, http.StatusForbidden, response.Envelope{
					Error:        "ROLE_MISMATCH",
					Message:      "Your role is not allowed to access this resource.",
					AllowedRoles: allowed.ToStrings(),
					YourRole:     identity.Role.String(),
				})
			}

			return next(c)
		}
	}
}

// RequireAdmin admits admins only.
func (m *RoleMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := deliverycontext.GetIdentity(c)
		if identity == nil {
			return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
		}

		if identity.Role != entity.RoleAdmin {
			return response.Fail(c, http.StatusForbidden, response.Envelope{
				Error:        "ADMIN_REQUIRED",
				Message:      "Administrator access is required.",
				RequiredRole: entity.RoleAdmin.String(),
				YourRole:     identity.Role.String(),
			})
		}

		return next(c)
	}
}

// RequireBlogger admits bloggers and above.
func (m *RoleMiddleware) RequireBlogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := deliverycontext.GetIdentity(c)
		if identity == nil {
			return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
		}

		if !identity.Role.AtLeast(entity.RoleBlogger) {
			return response.Fail(c, http.StatusForbidden, response.Envelope{
				Error:        "BLOGGER_REQUIRED",
				Message:      "Blogger access is required.",
				RequiredRole: entity.RoleBlogger.String(),
				YourRole:     identity.Role.String(),
			})
		}

		return next(c)
	}
}

// RequireCapability admits callers whose role may perform the named
// capability per the static permission table. Unknown capabilities are
// denied for every role.
func (m *RoleMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
			}

			if !identity.Role.Can(capability) {
				return response.Fail(c, http.StatusForbidden, response.Envelope{
					Error:    "INSUFFICIENT_ROLE",
					Message:  "Your role does not grant access to this resource.",
					Details:  "capability: " + string(capability),
					YourRole: identity.Role.String(),
				})
			}

			return next(c)
		}
	}
}

// RequireOwnershipOrAdmin admits admins unconditionally and otherwise
// requires the caller to own the resource named by the :id route param.
// The resource type selects the owner fetcher from the static table; an
// explicit fetcher may be passed to override it (used by tests and special
// routes).
func (m *RoleMiddleware) RequireOwnershipOrAdmin(resourceType string, override ...OwnerFetcher) echo.MiddlewareFunc {
	fetcher, known := m.fetchers[resourceType]
	if len(override) > 0 && override[0] != nil {
		fetcher, known = override[0], true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
			}

			// Admins bypass ownership entirely.
			if identity.Role == entity.RoleAdmin {
				return next(c)
			}

			idParam := c.Param("id")
			if idParam == "" {
				return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is missing from the request.")
			}

			resourceID, err := uuid.Parse(idParam)
			if err != nil {
				return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
			}

			if !known {
				return response.Error(c, http.StatusBadRequest, "INVALID_RESOURCE_TYPE", "Unknown resource type: "+resourceType)
			}

			ownerID, err := fetcher(c.Request().Context(), resourceID)
			if err != nil {
				if errors.Is(err, ErrOwnerNotFound) {
					return response.Error(c, http.StatusNotFound, "RESOURCE_NOT_FOUND", "The requested resource does not exist.")
				}

				m.logger.Error("Ownership lookup failed",
					slog.String("resourceType", resourceType),
					slog.Any("resourceID", resourceID),
					slog.Any("error", err))

				return response.Error(c, http.StatusInternalServerError, "SERVER_ERROR", "Internal server error.")
			}

			if ownerID != identity.UserID {
				return response.Fail(c, http.StatusForbidden, response.Envelope{
					Error:         "OWNERSHIP_REQUIRED",
					Message:       "You do not own this resource.",
					ResourceOwner: ownerID.String(),
					CurrentUser:   identity.UserID.String(),
				})
			}

			return next(c)
		}
	}
}
