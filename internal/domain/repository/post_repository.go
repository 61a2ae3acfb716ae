package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID, including the author name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindBySlug retrieves a single post by its unique slug, including the author name.
	FindBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// List retrieves posts ordered newest first, with limit/offset pagination.
	List(ctx context.Context, limit, offset int) ([]*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post's title and content.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
