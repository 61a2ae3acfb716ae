package usecase

import (
	"context"
	"time"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to publish a new post.
type CreatePostInput struct {
	Title     string   `json:"title" validate:"required,max=255"`
	Content   string   `json:"content" validate:"required"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}

// UpdatePostInput carries the optional fields a post edit may change.
type UpdatePostInput struct {
	Title     *string `json:"title" validate:"omitempty,max=255"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// ListPostsInput controls pagination of the post feed.
type ListPostsInput struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// PostOutput is the public shape of a post, with the author's name joined in.
type PostOutput struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	// Create publishes a new post authored by the given user.
	Create(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*PostOutput, error)

	// List returns posts newest first, paginated.
	List(ctx context.Context, input *ListPostsInput) ([]*PostOutput, error)

	// GetByID returns a single post.
	GetByID(ctx context.Context, id uuid.UUID) (*PostOutput, error)

	// GetBySlug returns a single post by its URL slug.
	GetBySlug(ctx context.Context, slug string) (*PostOutput, error)

	// Update applies an edit to an existing post.
	Update(ctx context.Context, id uuid.UUID, input *UpdatePostInput) (*PostOutput, error)

	// Delete removes a post.
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewPostOutput maps a domain post onto its public shape.
func NewPostOutput(post *entity.Post) *PostOutput {
	if post == nil {
		return nil
	}

	return &PostOutput{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Content:    post.Content,
		AuthorID:   post.AuthorID,
		AuthorName: post.AuthorName,
		Published:  post.Published,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}
