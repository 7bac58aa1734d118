package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "streamsync/internal/delivery/context"
	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/domain/service"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a regular user account and signs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	err = srv.userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		srv.log(ctx).Warn("Registration with an existing email", slog.String("email", email))

		return nil, domainerrors.ErrUserAlreadyExists
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return srv.issueTokens(user)
}

// Login verifies email and password. Unknown emails and wrong passwords are indistinguishable.
func (srv *userService) Login(ctx context.Context, email, password string) (*usecase.AuthOutput, error) {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

// Refresh issues a new token pair for the owner of a valid refresh token.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for refresh")
	}

	return srv.issueTokens(user)
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
