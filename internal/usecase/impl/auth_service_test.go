package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service usecase.AuthUsecase
	factory *fixedFactory
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	factory := newFixedFactory(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    &passthroughTxManager{factory: factory},
		UserRepo:     factory.userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service: svc,
		factory: factory,
		hasher:  hasher,
		tokens:  tokens,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username: "newwriter",
		Email:    "writer@example.com",
		Password: "longenough1",
	}

	fx.hasher.On("Hash", "longenough1").Return("hashed-password", nil)
	fx.factory.userRepo.On("FindByEmail", ctx, "writer@example.com").Return(nil, repository.ErrUserNotFound)
	fx.factory.userRepo.On("FindByUsername", ctx, "newwriter").Return(nil, repository.ErrUserNotFound)

	newID := uuid.New()
	fx.factory.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = newID
		}).
		Return(nil)

	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	fx.tokens.On("GenerateTokenPair", mock.AnythingOfType("*entity.User")).Return(pair, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, entity.RoleReader, output.User.Role)
	assert.Equal(t, pair, output.Tokens)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username: "newwriter",
		Email:    "taken@example.com",
		Password: "longenough1",
	}

	fx.hasher.On("Hash", "longenough1").Return("hashed-password", nil)
	fx.factory.userRepo.On("FindByEmail", ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserExists)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username: "taken",
		Email:    "fresh@example.com",
		Password: "longenough1",
	}

	fx.hasher.On("Hash", "longenough1").Return("hashed-password", nil)
	fx.factory.userRepo.On("FindByEmail", ctx, "fresh@example.com").Return(nil, repository.ErrUserNotFound)
	fx.factory.userRepo.On("FindByUsername", ctx, "taken").
		Return(&entity.User{ID: uuid.New(), Username: "taken"}, nil)

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "blogger",
		Email:        "blogger@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleBlogger,
		IsActive:     true,
	}

	fx.factory.userRepo.On("FindByEmail", ctx, "blogger@example.com").Return(user, nil)
	fx.hasher.On("Check", "correct-password", "stored-hash").Return(true)

	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	fx.tokens.On("GenerateTokenPair", user).Return(pair, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "blogger@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, pair, output.Tokens)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "blogger@example.com", PasswordHash: "stored-hash"}
	fx.factory.userRepo.On("FindByEmail", ctx, "blogger@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong-password", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "blogger@example.com",
		Password: "wrong-password",
	})

	// Wrong password and unknown email are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Username: "reader", Role: entity.RoleReader}
	claims := &service.Claims{UserID: user.ID, Username: user.Username, Role: user.Role, Type: service.TokenTypeRefresh}

	fx.tokens.On("ValidateRefreshToken", "good-refresh").Return(claims, nil)
	fx.factory.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	pair := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	fx.tokens.On("GenerateTokenPair", user).Return(pair, nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "good-refresh"})

	require.NoError(t, err)
	assert.Equal(t, pair, output.Tokens)
}

func TestAuthService_RefreshToken_Expired(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokens.On("ValidateRefreshToken", "stale").Return(nil, service.ErrTokenExpired)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "stale"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_RefreshToken_UserGone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	vanishedID := uuid.New()
	claims := &service.Claims{UserID: vanishedID, Type: service.TokenTypeRefresh}

	fx.tokens.On("ValidateRefreshToken", "orphaned").Return(claims, nil)
	fx.factory.userRepo.On("FindByID", ctx, vanishedID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "orphaned"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_UpdateProfile_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	current := &entity.User{ID: userID, Username: "oldname", Email: "me@example.com"}
	wanted := "occupied"

	fx.factory.userRepo.On("FindByID", ctx, userID).Return(current, nil)
	fx.factory.userRepo.On("FindByUsername", ctx, "occupied").
		Return(&entity.User{ID: uuid.New(), Username: "occupied"}, nil)

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Username: &wanted})

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAuthService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	userID := uuid.New()
	current := &entity.User{ID: userID, Username: "oldname", Email: "me@example.com"}
	wanted := "newname"

	fx.factory.userRepo.On("FindByID", ctx, userID).Return(current, nil)
	fx.factory.userRepo.On("FindByUsername", ctx, "newname").Return(nil, repository.ErrUserNotFound)
	fx.factory.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Username: &wanted})

	require.NoError(t, err)
	assert.Equal(t, "newname", output.Username)
}
