package handler

import (
	"net/http"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	uc usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Create attaches a new comment to the post in the route.
func (h *CommentHandler) Create(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	var input usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), postID, identity.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Comment created successfully")
}

// ListByPost returns all comments on the post in the route, newest first.
func (h *CommentHandler) ListByPost(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	outputs, err := h.uc.ListByPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// Update applies an edit to an existing comment.
func (h *CommentHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	var input usecase.UpdateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Comment updated successfully")
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
