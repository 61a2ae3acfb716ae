// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity of the platform. A user registers with a
// unique username and email, authenticates with a hashed password and holds
// exactly one role that drives every authorization decision.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique handle shown as the author name on posts and comments.
	Email        string    // The user's login identifier; unique across the platform.
	PasswordHash string    // bcrypt hash of the user's password; never exposed outward.
	Role         Role      // The user's privilege tier: reader, blogger or admin.
	IsActive     bool      // Soft activity flag; defaults to true for identities that predate it.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
