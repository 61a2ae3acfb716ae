package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog article authored by a blogger or admin.
type Post struct {
	ID         uuid.UUID // The unique identifier for the post.
	Title      string
	Slug       string // URL-friendly unique identifier derived from the title.
	Content    string
	AuthorID   uuid.UUID // Links the post to the user who owns it.
	AuthorName string    // Denormalized author username, populated on reads.
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerID returns the identity that owns this post.
func (p *Post) OwnerID() uuid.UUID {
	return p.AuthorID
}
