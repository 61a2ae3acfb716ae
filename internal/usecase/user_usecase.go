package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PromoteInput carries an admin's role change request for another user.
type PromoteInput struct {
	Role string `json:"role" validate:"required"`
}

// UserAdminUsecase defines administrative operations over user accounts.
type UserAdminUsecase interface {
	// Promote assigns a new role to the target user.
	Promote(ctx context.Context, targetID uuid.UUID, input *PromoteInput) (*UserOutput, error)

	// ListByRole returns all users holding the given role.
	ListByRole(ctx context.Context, role string) ([]*UserOutput, error)
}
