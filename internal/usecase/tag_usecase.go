package usecase

import (
	"context"
	"time"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// TagOutput is the public shape of a tag.
type TagOutput struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TagUsecase defines the interface for tag-related business operations.
type TagUsecase interface {
	// Upsert creates a tag by name, or returns the existing one.
	Upsert(ctx context.Context, name string) (*TagOutput, error)

	// AttachToPost links an existing tag to a post.
	AttachToPost(ctx context.Context, postID uuid.UUID, name string) (*TagOutput, error)

	// TagsForPost returns all tags attached to a post.
	TagsForPost(ctx context.Context, postID uuid.UUID) ([]*TagOutput, error)
}

// NewTagOutput maps a domain tag onto its public shape.
func NewTagOutput(tag *entity.Tag) *TagOutput {
	if tag == nil {
		return nil
	}

	return &TagOutput{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
	}
}
