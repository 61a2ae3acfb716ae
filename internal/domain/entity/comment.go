package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reader's response attached to a single post.
type Comment struct {
	ID         uuid.UUID
	Content    string
	PostID     uuid.UUID // The post this comment belongs to.
	UserID     uuid.UUID // Links the comment to the user who owns it.
	AuthorName string    // Denormalized commenter username, populated on reads.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerID returns the identity that owns this comment.
func (c *Comment) OwnerID() uuid.UUID {
	return c.UserID
}
