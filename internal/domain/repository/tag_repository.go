package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTagNotFound is a domain-specific error returned when a tag is not found.
var ErrTagNotFound = errors.New("tag not found")

// TagRepository defines the standard operations for tag persistence.
type TagRepository interface {
	// Upsert creates the tag if it does not exist yet and returns the stored row either way.
	Upsert(ctx context.Context, tag *entity.Tag) error

	// FindByName retrieves a single tag by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Tag, error)

	// AttachToPost links a tag to a post. Attaching an already linked pair is a no-op.
	AttachToPost(ctx context.Context, postID, tagID uuid.UUID) error

	// FindByPostID retrieves all tags attached to a post.
	FindByPostID(ctx context.Context, postID uuid.UUID) ([]*entity.Tag, error)
}
