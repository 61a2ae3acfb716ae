package usecase

import (
	"context"
	"time"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to comment on a post.
type CreateCommentInput struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// UpdateCommentInput carries an edit to an existing comment.
type UpdateCommentInput struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// CommentOutput is the public shape of a comment, with the author's name joined in.
type CommentOutput struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	PostID     uuid.UUID `json:"postId"`
	UserID     uuid.UUID `json:"userId"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	// Create attaches a new comment to a post.
	Create(ctx context.Context, postID, userID uuid.UUID, input *CreateCommentInput) (*CommentOutput, error)

	// ListByPost returns a post's comments newest first.
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*CommentOutput, error)

	// Update applies an edit to an existing comment.
	Update(ctx context.Context, id uuid.UUID, input *UpdateCommentInput) (*CommentOutput, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewCommentOutput maps a domain comment onto its public shape.
func NewCommentOutput(comment *entity.Comment) *CommentOutput {
	if comment == nil {
		return nil
	}

	return &CommentOutput{
		ID:         comment.ID,
		Content:    comment.Content,
		PostID:     comment.PostID,
		UserID:     comment.UserID,
		AuthorName: comment.AuthorName,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}
}
