package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a label that can be attached to any number of posts.
type Tag struct {
	ID        uuid.UUID
	Name      string // Unique tag name.
	CreatedAt time.Time
}
