package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserAdminService(t *testing.T) (usecase.UserAdminUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserAdminService(UserAdminServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return svc, userRepo
}

func TestUserAdminService_Promote_Success(t *testing.T) {
	svc, userRepo := createTestUserAdminService(t)
	ctx := context.Background()

	targetID := uuid.New()
	target := &entity.User{ID: targetID, Username: "reader", Role: entity.RoleReader}

	userRepo.On("FindByID", ctx, targetID).Return(target, nil)
	userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == targetID && u.Role == entity.RoleBlogger
	})).Return(nil)

	output, err := svc.Promote(ctx, targetID, &usecase.PromoteInput{Role: "blogger"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleBlogger, output.Role)
}

func TestUserAdminService_Promote_UnknownRole(t *testing.T) {
	svc, _ := createTestUserAdminService(t)

	_, err := svc.Promote(context.Background(), uuid.New(), &usecase.PromoteInput{Role: "superuser"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserAdminService_Promote_UserMissing(t *testing.T) {
	svc, userRepo := createTestUserAdminService(t)
	ctx := context.Background()

	missingID := uuid.New()
	userRepo.On("FindByID", ctx, missingID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Promote(ctx, missingID, &usecase.PromoteInput{Role: "admin"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserAdminService_ListByRole_Success(t *testing.T) {
	svc, userRepo := createTestUserAdminService(t)
	ctx := context.Background()

	bloggers := []*entity.User{
		{ID: uuid.New(), Username: "alice", Role: entity.RoleBlogger},
		{ID: uuid.New(), Username: "bob", Role: entity.RoleBlogger},
	}
	userRepo.On("ListByRole", ctx, entity.RoleBlogger).Return(bloggers, nil)

	outputs, err := svc.ListByRole(ctx, "blogger")

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "alice", outputs[0].Username)
}

func TestUserAdminService_ListByRole_UnknownRole(t *testing.T) {
	svc, _ := createTestUserAdminService(t)

	_, err := svc.ListByRole(context.Background(), "wizard")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
