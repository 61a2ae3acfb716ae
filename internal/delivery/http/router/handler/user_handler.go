package handler

import (
	"net/http"

	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for administrative user handlers.
type UserHandler struct {
	uc usecase.UserAdminUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserAdminUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Promote assigns a new role to the target user.
func (h *UserHandler) Promote(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	var input usecase.PromoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid role input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Promote(c.Request().Context(), targetID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Role updated successfully")
}

// ListByRole returns all users holding the role given in the query string.
func (h *UserHandler) ListByRole(c echo.Context) error {
	role := c.QueryParam("role")
	if role == "" {
		return response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Query parameter 'role' is required.")
	}

	outputs, err := h.uc.ListByRole(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}
