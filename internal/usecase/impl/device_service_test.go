package impl

import (
	"context"
	"testing"

	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	mockRepo "streamsync/internal/mocks/repository"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceTokenRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceTokenRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo, newDiscardLogger()),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterToken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().UpsertToken(ctx, mock.MatchedBy(func(token *entity.DeviceToken) bool {
		return token.UserID == userID && token.Token == "fcm-token-123" && token.Platform == entity.PlatformIOS
	})).RunAndReturn(func(_ context.Context, token *entity.DeviceToken) (*entity.DeviceToken, error) {
		return token, nil
	}).Once()

	device, err := fx.service.RegisterToken(ctx, userID, "  fcm-token-123 ", entity.PlatformIOS)

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-123", device.Token)
}

func TestDeviceService_RegisterToken_ReassignsOwner(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	firstUser := uuid.New()
	secondUser := uuid.New()

	fx.deviceRepo.EXPECT().UpsertToken(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, token *entity.DeviceToken) (*entity.DeviceToken, error) {
			return token, nil
		}).Twice()

	_, err := fx.service.RegisterToken(ctx, firstUser, "shared-token-1", entity.PlatformAndroid)
	require.NoError(t, err)

	device, err := fx.service.RegisterToken(ctx, secondUser, "shared-token-1", entity.PlatformWeb)
	require.NoError(t, err)
	assert.Equal(t, secondUser, device.UserID)
	assert.Equal(t, entity.PlatformWeb, device.Platform)
}

func TestDeviceService_RegisterToken_Validation(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterToken(ctx, uuid.New(), "", entity.PlatformIOS)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRequest))

	_, err = fx.service.RegisterToken(ctx, uuid.New(), "fcm-token-123", entity.Platform("symbian"))
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	fx.deviceRepo.AssertNotCalled(t, "UpsertToken", mock.Anything, mock.Anything)
}

func TestDeviceService_RegisterToken_StoreError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().UpsertToken(ctx, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := fx.service.RegisterToken(ctx, uuid.New(), "fcm-token-123", entity.PlatformIOS)

	assert.Error(t, err)
}

func TestDeviceService_DeleteToken_MismatchIsSilent(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().DeleteToken(ctx, userID, "someone-elses").Return(int64(0), nil).Once()

	assert.NoError(t, fx.service.DeleteToken(ctx, userID, "someone-elses"))
}

func TestDeviceService_DeleteToken_EmptyToken(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.DeleteToken(context.Background(), uuid.New(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRequest))
}

func TestDeviceService_DeleteAllTokens(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().DeleteAllUserTokens(ctx, userID).Return(int64(3), nil).Once()

	removed, err := fx.service.DeleteAllTokens(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
