package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "streamsync/internal/delivery/context"
	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceTokenRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceTokenRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterToken upserts the token for the user. Registering the same token again is idempotent.
func (s *deviceService) RegisterToken(ctx context.Context, userID uuid.UUID, token string, platform entity.Platform) (*entity.DeviceToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidRequest, "token is required")
	}
	if !platform.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be one of android, ios, web")
	}

	stored, err := s.deviceRepo.UpsertToken(ctx, &entity.DeviceToken{
		ID:       uuid.New(),
		UserID:   userID,
		Token:    token,
		Platform: platform,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device token")
	}

	s.log(ctx).Debug("Device token registered",
		slog.String("user_id", userID.String()),
		slog.String("platform", string(platform)))

	return stored, nil
}

// DeleteToken removes the token when the user owns it.
func (s *deviceService) DeleteToken(ctx context.Context, userID uuid.UUID, token string) error {
	if token == "" {
		return errors.Wrap(domainerrors.ErrInvalidRequest, "token is required")
	}

	rows, err := s.deviceRepo.DeleteToken(ctx, userID, token)
	if err != nil {
		return errors.Wrap(err, "failed to delete device token")
	}
	if rows == 0 {
		s.log(ctx).Debug("Delete token matched no registration", slog.String("user_id", userID.String()))
	}

	return nil
}

// DeleteAllTokens removes every token of the user.
func (s *deviceService) DeleteAllTokens(ctx context.Context, userID uuid.UUID) (int64, error) {
	removed, err := s.deviceRepo.DeleteAllUserTokens(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete device tokens")
	}

	return removed, nil
}
