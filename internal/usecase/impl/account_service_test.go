package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	mockRepo "taskhub/internal/mocks/repository"
	mockSvc "taskhub/internal/mocks/service"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "password123",
	}
	userID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("service.Identity")).
		Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "signed_token", output.Token)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "password123",
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("service.Identity")).
		Return("signed_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "missing@example.com",
		Password: "password123",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong_password",
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	// A wrong password answers the same error as an unknown email.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_TokenFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "password123",
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("service.Identity")).
		Return("", errors.New("signing failure"))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
}
