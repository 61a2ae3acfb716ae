// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UpdateProfileInput carries the optional fields a user may change on their profile.
type UpdateProfileInput struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50,username"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
}

// --- Output DTOs ---

// UserOutput is the public shape of a user, without the password hash.
type UserOutput struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
}

// AuthOutput bundles a user with a freshly issued token pair.
type AuthOutput struct {
	User   *UserOutput        `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new reader account and issues its first token pair.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies email/password credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)

	// GetProfile returns the current user's public profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserOutput, error)

	// UpdateProfile changes the current user's username and/or email.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UserOutput, error)
}

// NewUserOutput maps a domain user onto its public shape.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
