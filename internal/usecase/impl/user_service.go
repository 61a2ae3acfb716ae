package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserAdminServiceParams holds dependencies for userAdminService, injected by Fx.
type UserAdminServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params UserAdminServiceParams) usecase.UserAdminUsecase {
	return &userAdminService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *userAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Promote assigns a new role to the target user. Only roles from the closed
// role set are accepted.
func (srv *userAdminService) Promote(ctx context.Context, targetID uuid.UUID, input *usecase.PromoteInput) (*usecase.UserOutput, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role: " + input.Role)
	}

	user, err := srv.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for promotion")
	}

	previousRole := user.Role
	user.Role = role

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist role change")
	}

	srv.log(ctx).Info("User role changed",
		slog.Any("userID", user.ID),
		slog.String("from", previousRole.String()),
		slog.String("to", role.String()))

	return usecase.NewUserOutput(user), nil
}

// ListByRole returns all users holding the given role.
func (srv *userAdminService) ListByRole(ctx context.Context, roleName string) ([]*usecase.UserOutput, error) {
	role := entity.Role(roleName)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role: " + roleName)
	}

	users, err := srv.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, usecase.NewUserOutput(user))
	}

	return outputs, nil
}
