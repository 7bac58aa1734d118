package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"streamsync/internal/domain/constants"
	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/domain/service"
	mockRepo "streamsync/internal/mocks/repository"
	mockSvc "streamsync/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          *notificationService
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceTokenRepository
	provider         *mockSvc.MockDeliveryProvider
	publisher        *mockSvc.MockEventPublisher
}

func createTestNotificationService(t *testing.T, withProvider bool) notificationServiceFixtures {
	fx := notificationServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		repoFactory:      mockRepo.NewMockRepositoryFactory(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceTokenRepository(t),
		provider:         mockSvc.NewMockDeliveryProvider(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	params := NotificationServiceParams{
		TxManager:        fx.txManager,
		NotificationRepo: fx.notificationRepo,
		DeviceRepo:       fx.deviceRepo,
		Publisher:        fx.publisher,
		Logger:           newDiscardLogger(),
	}
	if withProvider {
		params.Provider = fx.provider
	}

	fx.service = NewNotificationService(params).(*notificationService)
	fx.service.now = fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	return fx
}

// expectTransaction runs the transaction callback against the same notification repository mock.
func (fx notificationServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		}).Once()
	fx.repoFactory.EXPECT().NewNotificationRepository().Return(fx.notificationRepo).Once()
}

func devicesFor(userID uuid.UUID, tokens ...string) []*entity.DeviceToken {
	devices := make([]*entity.DeviceToken, 0, len(tokens))
	for _, token := range tokens {
		devices = append(devices, &entity.DeviceToken{ID: uuid.New(), UserID: userID, Token: token, Platform: entity.PlatformAndroid})
	}

	return devices
}

func TestNotificationService_SendToUser_ProviderUnavailable(t *testing.T) {
	fx := createTestNotificationService(t, false)

	_, err := fx.service.SendToUser(context.Background(), uuid.New(), "Hi", "There")

	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
	fx.deviceRepo.AssertNotCalled(t, "FindTokensByUser", mock.Anything, mock.Anything)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestNotificationService_SendToUser_NoRecipientsCreatesNoRecord(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindTokensByUser(ctx, userID).Return([]*entity.DeviceToken{}, nil).Once()

	_, err := fx.service.SendToUser(ctx, userID, "Hi", "There")

	assert.True(t, errors.Is(err, domainerrors.ErrNoRecipients))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.notificationRepo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
}

func TestNotificationService_SendToUser_PartialFailure(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindTokensByUser(ctx, userID).Return(devicesFor(userID, "tok-a", "tok-b", "tok-c"), nil).Once()
	fx.expectTransaction(ctx)

	var created *entity.Notification
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			created = n

			return nil
		}).Once()
	fx.notificationRepo.EXPECT().CreateJob(ctx, mock.MatchedBy(func(job *entity.NotificationJob) bool {
		return job.Status == entity.JobStatusPending
	})).Return(nil).Once()

	fx.provider.EXPECT().SendMulticast(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
		return len(msg.Tokens) == 3 &&
			msg.Title == "Hi" &&
			msg.Body == "There" &&
			msg.Data["type"] == constants.NotificationTypeTest &&
			msg.Data["notificationId"] == created.ID.String()
	})).Return(&entity.DeliveryReport{Results: []entity.DeliveryResult{
		{Token: "tok-a", Success: true},
		{Token: "tok-b", Success: false, Reason: "registration-token-not-registered", Unregistered: true},
		{Token: "tok-c", Success: false, Reason: "internal"},
	}}, nil).Once()

	fx.notificationRepo.EXPECT().MarkSent(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil).Once()
	fx.notificationRepo.EXPECT().UpdateJob(ctx, mock.MatchedBy(func(job *entity.NotificationJob) bool {
		return job.Status == entity.JobStatusCompleted && job.Attempts == 1
	})).Return(nil).Once()
	fx.deviceRepo.EXPECT().DeleteTokens(ctx, userID, []string{"tok-b"}).Return(int64(1), nil).Once()

	outcome, err := fx.service.SendToUser(ctx, userID, "Hi", "There")

	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Sent)
	assert.Equal(t, 2, outcome.Failed)
	assert.Len(t, outcome.Results, 3)
	assert.True(t, outcome.Notification.Sent)
	assert.Equal(t, userID, *outcome.Notification.UserID)
	assert.Equal(t, constants.NotificationTypeTest, outcome.Notification.Metadata["type"])
	assert.NotEmpty(t, outcome.Notification.Metadata["timestamp"])
}

func TestNotificationService_SendToUser_AllFailedStillMarksSent(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindTokensByUser(ctx, userID).Return(devicesFor(userID, "tok-a"), nil).Once()
	fx.expectTransaction(ctx)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Once()
	fx.notificationRepo.EXPECT().CreateJob(ctx, mock.Anything).Return(nil).Once()
	fx.provider.EXPECT().SendMulticast(ctx, mock.Anything).Return(&entity.DeliveryReport{Results: []entity.DeliveryResult{
		{Token: "tok-a", Success: false, Reason: "unavailable"},
	}}, nil).Once()
	fx.notificationRepo.EXPECT().MarkSent(ctx, mock.Anything).Return(nil).Once()
	fx.notificationRepo.EXPECT().UpdateJob(ctx, mock.Anything).Return(nil).Once()

	outcome, err := fx.service.SendToUser(ctx, userID, "Hi", "There")

	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Sent)
	assert.Equal(t, 1, outcome.Failed)
	fx.deviceRepo.AssertNotCalled(t, "DeleteTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_SendToUser_TransportFailureLeavesRecordUnsent(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindTokensByUser(ctx, userID).Return(devicesFor(userID, "tok-a"), nil).Once()
	fx.expectTransaction(ctx)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Once()
	fx.notificationRepo.EXPECT().CreateJob(ctx, mock.Anything).Return(nil).Once()
	fx.provider.EXPECT().SendMulticast(ctx, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	fx.notificationRepo.EXPECT().UpdateJob(ctx, mock.MatchedBy(func(job *entity.NotificationJob) bool {
		return job.Status == entity.JobStatusFailed && job.LastError == "connection reset" && job.Attempts == 1
	})).Return(nil).Once()

	_, err := fx.service.SendToUser(ctx, userID, "Hi", "There")

	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryFailed))
	fx.notificationRepo.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything)
}

func TestNotificationService_SendToUser_TransactionFailure(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindTokensByUser(ctx, userID).Return(devicesFor(userID, "tok-a"), nil).Once()
	fx.expectTransaction(ctx)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(errors.New("db down")).Once()

	_, err := fx.service.SendToUser(ctx, userID, "Hi", "There")

	assert.Error(t, err)
	fx.provider.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything)
}

func TestNotificationService_QueueToUser_PublishesEvent(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.expectTransaction(ctx)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Once()
	fx.notificationRepo.EXPECT().CreateJob(ctx, mock.Anything).Return(nil).Once()

	var published *service.NotificationEvent
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.NotificationEvent) error {
			published = event

			return nil
		}).Once()

	notification, err := fx.service.QueueToUser(ctx, userID, "Hi", "Queued")

	require.NoError(t, err)
	assert.False(t, notification.Sent)
	assert.Equal(t, constants.NotificationTypeQueued, notification.Metadata["type"])
	require.NotNil(t, published)
	assert.Equal(t, notification.ID.String(), published.NotificationID)
	assert.Equal(t, userID.String(), published.UserID)
}

func TestNotificationService_QueueToUser_PublishFailure(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()

	fx.expectTransaction(ctx)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Once()
	fx.notificationRepo.EXPECT().CreateJob(ctx, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("topic missing")).Once()

	_, err := fx.service.QueueToUser(ctx, uuid.New(), "Hi", "Queued")

	assert.Error(t, err)
}

func TestNotificationService_DeliverQueued_Success(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notification := &entity.Notification{
		ID:       notificationID,
		UserID:   &userID,
		Title:    "Hi",
		Body:     "Queued",
		Metadata: map[string]string{"type": constants.NotificationTypeQueued},
	}
	job := &entity.NotificationJob{ID: uuid.New(), NotificationID: notificationID, Status: entity.JobStatusFailed, Attempts: 1}

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(notification, nil).Once()
	fx.notificationRepo.EXPECT().FindJobByNotificationID(ctx, notificationID).Return(job, nil).Once()
	fx.deviceRepo.EXPECT().FindTokensByUser(ctx, userID).Return(devicesFor(userID, "tok-a"), nil).Once()
	fx.provider.EXPECT().SendMulticast(ctx, mock.Anything).Return(&entity.DeliveryReport{Results: []entity.DeliveryResult{
		{Token: "tok-a", Success: true},
	}}, nil).Once()
	fx.notificationRepo.EXPECT().MarkSent(ctx, notificationID).Return(nil).Once()
	fx.notificationRepo.EXPECT().UpdateJob(ctx, job).Return(nil).Once()

	outcome, err := fx.service.DeliverQueued(ctx, notificationID)

	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Sent)
	assert.Equal(t, entity.JobStatusCompleted, job.Status)
	assert.Equal(t, 2, job.Attempts)
	assert.Empty(t, job.LastError)
}

func TestNotificationService_DeliverQueued_LaterBatchFailureStillMarksSent(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	tokens := make([]string, 0, multicastBatchSize+2)
	for i := range multicastBatchSize + 2 {
		tokens = append(tokens, fmt.Sprintf("tok-%03d", i))
	}
	firstBatch := make([]entity.DeliveryResult, 0, multicastBatchSize)
	for _, token := range tokens[:multicastBatchSize] {
		firstBatch = append(firstBatch, entity.DeliveryResult{Token: token, Success: true})
	}

	notification := &entity.Notification{
		ID:       notificationID,
		UserID:   &userID,
		Title:    "Hi",
		Body:     "Queued",
		Metadata: map[string]string{"type": constants.NotificationTypeQueued},
	}
	job := &entity.NotificationJob{ID: uuid.New(), NotificationID: notificationID, Status: entity.JobStatusPending}

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(notification, nil).Once()
	fx.notificationRepo.EXPECT().FindJobByNotificationID(ctx, notificationID).Return(job, nil).Once()
	fx.deviceRepo.EXPECT().FindTokensByUser(ctx, userID).Return(devicesFor(userID, tokens...), nil).Once()
	fx.provider.EXPECT().SendMulticast(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
		return len(msg.Tokens) == multicastBatchSize
	})).Return(&entity.DeliveryReport{Results: firstBatch}, nil).Once()
	fx.provider.EXPECT().SendMulticast(ctx, mock.MatchedBy(func(msg *service.PushMessage) bool {
		return len(msg.Tokens) == 2
	})).Return(nil, errors.New("quota exceeded")).Once()
	fx.notificationRepo.EXPECT().MarkSent(ctx, notificationID).Return(nil).Once()
	fx.notificationRepo.EXPECT().UpdateJob(ctx, job).Return(nil).Once()

	outcome, err := fx.service.DeliverQueued(ctx, notificationID)

	require.NoError(t, err)
	assert.Equal(t, multicastBatchSize, outcome.Sent)
	assert.Equal(t, 2, outcome.Failed)
	assert.True(t, notification.Sent)
	assert.Equal(t, entity.JobStatusCompleted, job.Status)
	assert.Equal(t, "quota exceeded", job.LastError)

	failed := outcome.Results[len(outcome.Results)-2:]
	assert.Equal(t, tokens[multicastBatchSize:], []string{failed[0].Token, failed[1].Token})
	for _, result := range failed {
		assert.False(t, result.Success)
		assert.False(t, result.Unregistered)
		assert.Equal(t, "quota exceeded", result.Reason)
	}
	fx.deviceRepo.AssertNotCalled(t, "DeleteTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_DeliverQueued_AlreadySent(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, Sent: true}, nil).Once()
	fx.notificationRepo.EXPECT().FindJobByNotificationID(ctx, notificationID).
		Return(&entity.NotificationJob{NotificationID: notificationID, Status: entity.JobStatusCompleted}, nil).Once()

	outcome, err := fx.service.DeliverQueued(ctx, notificationID)

	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Sent)
	fx.provider.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything)
}

func TestNotificationService_DeliverQueued_NotFound(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).Return(nil, repository.ErrNotificationNotFound).Once()

	_, err := fx.service.DeliverQueued(ctx, notificationID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_DeliverQueued_MissingJobIsCreated(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: &userID, Metadata: map[string]string{}}, nil).Once()
	fx.notificationRepo.EXPECT().FindJobByNotificationID(ctx, notificationID).Return(nil, repository.ErrNotificationJobNotFound).Once()
	fx.notificationRepo.EXPECT().CreateJob(ctx, mock.Anything).Return(nil).Once()
	fx.deviceRepo.EXPECT().FindTokensByUser(ctx, userID).Return(nil, nil).Once()
	fx.notificationRepo.EXPECT().UpdateJob(ctx, mock.MatchedBy(func(job *entity.NotificationJob) bool {
		return job.Status == entity.JobStatusFailed && job.Attempts == 1
	})).Return(nil).Once()

	_, err := fx.service.DeliverQueued(ctx, notificationID)

	assert.True(t, errors.Is(err, domainerrors.ErrNoRecipients))
}

func TestNotificationService_DeliverQueued_ProviderUnavailable(t *testing.T) {
	fx := createTestNotificationService(t, false)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: &userID}, nil).Once()
	fx.notificationRepo.EXPECT().FindJobByNotificationID(ctx, notificationID).
		Return(&entity.NotificationJob{NotificationID: notificationID, Status: entity.JobStatusPending}, nil).Once()
	fx.notificationRepo.EXPECT().UpdateJob(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.DeliverQueued(ctx, notificationID)

	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
}

func TestNotificationService_ListNotifications_DefaultLimit(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().FindNotificationsByUser(ctx, userID, 50).Return([]*entity.Notification{}, nil).Once()
	fx.notificationRepo.EXPECT().FindNotificationsByUser(ctx, userID, 5).Return([]*entity.Notification{{ID: uuid.New()}}, nil).Once()

	got, err := fx.service.ListNotifications(ctx, userID, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = fx.service.ListNotifications(ctx, userID, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNotificationService_MarkReadAndSoftDelete_OtherUserIsNoop(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	notificationID := uuid.New()
	otherUser := uuid.New()

	fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID, otherUser).Return(int64(0), nil).Once()
	fx.notificationRepo.EXPECT().SoftDelete(ctx, notificationID, otherUser).Return(int64(0), nil).Once()

	assert.NoError(t, fx.service.MarkRead(ctx, notificationID, otherUser))
	assert.NoError(t, fx.service.SoftDelete(ctx, notificationID, otherUser))
}

func TestNotificationService_MarkRead_StoreError(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().MarkRead(ctx, mock.Anything, mock.Anything).Return(int64(0), errors.New("timeout")).Once()

	assert.Error(t, fx.service.MarkRead(ctx, uuid.New(), uuid.New()))
}

func TestNotificationService_UnreadCount(t *testing.T) {
	fx := createTestNotificationService(t, true)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(3), nil).Once()

	count, err := fx.service.UnreadCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
