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

// PostHandler holds dependencies for post handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	tagsUC usecase.TagUsecase
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, tagsUC usecase.TagUsecase) *PostHandler {
	return &PostHandler{uc: uc, tagsUC: tagsUC}
}

// Create publishes a new post authored by the caller.
func (h *PostHandler) Create(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Authentication is required to access this resource.")
	}

	var input usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), identity.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Post created successfully")
}

// List returns the post feed, newest first.
func (h *PostHandler) List(c echo.Context) error {
	var input usecase.ListPostsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid pagination parameters")
	}

	outputs, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// GetByID returns a single post.
func (h *PostHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	output, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GetBySlug returns a single post by its URL slug.
func (h *PostHandler) GetBySlug(c echo.Context) error {
	output, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Update applies an edit to an existing post.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	var input usecase.UpdatePostInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid post input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Post updated successfully")
}

// Delete removes a post.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully")
}

// Tags returns all tags attached to a post.
func (h *PostHandler) Tags(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	outputs, err := h.tagsUC.TagsForPost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// AttachTag links a tag (by name) to a post.
func (h *PostHandler) AttachTag(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "MISSING_RESOURCE_ID", "Resource ID is not a valid identifier.")
	}

	var input struct {
		Name string `json:"name" validate:"required,min=1,max=50"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid tag input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.tagsUC.AttachToPost(c.Request().Context(), id, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Tag attached successfully")
}
