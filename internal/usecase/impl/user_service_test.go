package impl

import (
	"context"
	"testing"

	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/domain/service"
	mockRepo "streamsync/internal/mocks/repository"
	mockSvc "streamsync/internal/mocks/service"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewUserService(UserServiceParams{
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx userServiceFixtures) expectTokens(userID interface{}) {
	fx.tokenService.EXPECT().GenerateAccessToken(userID, mock.Anything, []string{"user"}).Return("access-token", nil).Once()
	fx.tokenService.EXPECT().GenerateRefreshToken(userID).Return("refresh-token", nil).Once()
}

func TestUserService_Register(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil).Once()
	fx.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "viewer@example.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleUser && u.Name == "Viewer"
	})).Return(nil).Once()
	fx.expectTokens(mock.Anything)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: " Viewer ", Email: "Viewer@Example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, "viewer@example.com", out.User.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail).Once()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Viewer", Email: "viewer@example.com", Password: "secret123"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost too high")).Once()

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "Viewer", Email: "viewer@example.com", Password: "secret123"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "viewer@example.com", PasswordHash: "hashed", Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByEmail(ctx, "viewer@example.com").Return(user, nil).Once()
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true).Once()
	fx.expectTokens(user.ID)

	out, err := fx.service.Login(ctx, "VIEWER@example.com ", "secret123")

	require.NoError(t, err)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "viewer@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "viewer@example.com").Return(user, nil).Once()
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.Login(ctx, "viewer@example.com", "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = fx.service.Login(ctx, "ghost@example.com", "whatever")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Refresh(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "viewer@example.com", Role: entity.RoleUser}

	fx.tokenService.EXPECT().ValidateRefreshToken("good").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
	fx.expectTokens(user.ID)

	out, err := fx.service.Refresh(ctx, "good")

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
}

func TestUserService_Refresh_Invalid(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	deletedUser := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, errors.New("expired")).Once()
	fx.tokenService.EXPECT().ValidateRefreshToken("orphan").Return(&service.Claims{UserID: deletedUser}, nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, deletedUser).Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.Refresh(ctx, "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))

	_, err = fx.service.Refresh(ctx, "orphan")
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}
