package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "streamsync/internal/delivery/context"
	"streamsync/internal/domain/constants"
	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/domain/service"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase multicast limit
	multicastBatchSize = 500

	defaultNotificationLimit = 50
)

type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceTokenRepository
	provider         service.DeliveryProvider
	publisher        service.EventPublisher
	now              func() time.Time
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceTokenRepository
	Provider         service.DeliveryProvider `optional:"true"`
	Publisher        service.EventPublisher   `optional:"true"`
	Logger           *slog.Logger
}

// NewNotificationService creates the push dispatcher. A nil Provider means push delivery is not configured.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		provider:         params.Provider,
		publisher:        params.Publisher,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SendToUser delivers a test notification to every registered device of the user.
func (s *notificationService) SendToUser(ctx context.Context, userID uuid.UUID, title, body string) (*entity.SendOutcome, error) {
	if s.provider == nil {
		return nil, domainerrors.ErrProviderUnavailable
	}

	tokens, err := s.userTokens(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, domainerrors.ErrNoRecipients
	}

	notification, job, err := s.createNotification(ctx, userID, title, body, constants.NotificationTypeTest)
	if err != nil {
		return nil, err
	}

	return s.deliver(ctx, notification, job, tokens)
}

// QueueToUser stores the notification with a pending job and publishes an event for the worker.
func (s *notificationService) QueueToUser(ctx context.Context, userID uuid.UUID, title, body string) (*entity.Notification, error) {
	notification, _, err := s.createNotification(ctx, userID, title, body, constants.NotificationTypeQueued)
	if err != nil {
		return nil, err
	}

	if s.publisher == nil {
		s.log(ctx).Warn("No event publisher configured, notification stays pending",
			slog.String("notification_id", notification.ID.String()))

		return notification, nil
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		UserID:         userID.String(),
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		// The record and its pending job are committed; a republish can pick them up.
		s.log(ctx).Error("Failed to publish notification event",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to publish notification event")
	}

	return notification, nil
}

// DeliverQueued sends a queued notification and records the attempt on its job.
func (s *notificationService) DeliverQueued(ctx context.Context, notificationID uuid.UUID) (*entity.SendOutcome, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification")
	}

	job, err := s.findOrCreateJob(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if notification.Sent || job.Status == entity.JobStatusCompleted {
		s.log(ctx).Info("Notification already delivered, skipping",
			slog.String("notification_id", notificationID.String()))

		return &entity.SendOutcome{Notification: notification}, nil
	}

	if s.provider == nil {
		s.failJob(ctx, job, domainerrors.ErrProviderUnavailable)

		return nil, domainerrors.ErrProviderUnavailable
	}

	if notification.UserID == nil {
		s.failJob(ctx, job, domainerrors.ErrNoRecipients)

		return nil, domainerrors.ErrNoRecipients
	}

	tokens, err := s.userTokens(ctx, *notification.UserID)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		s.failJob(ctx, job, domainerrors.ErrNoRecipients)

		return nil, domainerrors.ErrNoRecipients
	}

	return s.deliver(ctx, notification, job, tokens)
}

// ListNotifications returns the user's inbox.
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags the notification as read. A notification of another user is left untouched.
func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	rows, err := s.notificationRepo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}
	if rows == 0 {
		s.log(ctx).Debug("Mark read matched no notification",
			slog.String("notification_id", notificationID.String()))
	}

	return nil
}

// SoftDelete hides the notification. A notification of another user is left untouched.
func (s *notificationService) SoftDelete(ctx context.Context, notificationID, userID uuid.UUID) error {
	rows, err := s.notificationRepo.SoftDelete(ctx, notificationID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}
	if rows == 0 {
		s.log(ctx).Debug("Soft delete matched no notification",
			slog.String("notification_id", notificationID.String()))
	}

	return nil
}

// UnreadCount counts the user's unread notifications.
func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (s *notificationService) userTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	devices, err := s.deviceRepo.FindTokensByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
	}

	return tokens, nil
}

// createNotification writes the unsent record and its pending job in one transaction.
func (s *notificationService) createNotification(
	ctx context.Context,
	userID uuid.UUID,
	title, body, notificationType string,
) (*entity.Notification, *entity.NotificationJob, error) {
	now := s.now().UTC()
	notification := &entity.Notification{
		ID:     uuid.New(),
		UserID: &userID,
		Title:  title,
		Body:   body,
		Metadata: map[string]string{
			"type":      notificationType,
			"timestamp": now.Format(time.RFC3339),
		},
		ReceivedAt: now,
	}
	job := &entity.NotificationJob{
		ID:             uuid.New(),
		NotificationID: notification.ID,
		Status:         entity.JobStatusPending,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NewNotificationRepository()
		if err := notificationRepo.CreateNotification(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}
		if err := notificationRepo.CreateJob(ctx, job); err != nil {
			return errors.Wrap(err, "failed to create notification job")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Error("Failed to store notification",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))

		return nil, nil, err
	}

	return notification, job, nil
}

func (s *notificationService) findOrCreateJob(ctx context.Context, notificationID uuid.UUID) (*entity.NotificationJob, error) {
	job, err := s.notificationRepo.FindJobByNotificationID(ctx, notificationID)
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, repository.ErrNotificationJobNotFound) {
		return nil, errors.Wrap(err, "failed to find notification job")
	}

	job = &entity.NotificationJob{
		ID:             uuid.New(),
		NotificationID: notificationID,
		Status:         entity.JobStatusPending,
	}
	if err := s.notificationRepo.CreateJob(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to create notification job")
	}

	return job, nil
}

// deliver sends the notification to the tokens, then records the outcome on the notification and its job.
func (s *notificationService) deliver(
	ctx context.Context,
	notification *entity.Notification,
	job *entity.NotificationJob,
	tokens []string,
) (*entity.SendOutcome, error) {
	data := map[string]string{
		"notificationId": notification.ID.String(),
		"type":           notification.Metadata["type"],
	}

	// A request error aborts only while nothing has been delivered. Later failed batches are
	// reported per token and the notification still counts as sent.
	report := &entity.DeliveryReport{}
	var batchErr error
	for start := 0; start < len(tokens); start += multicastBatchSize {
		end := min(start+multicastBatchSize, len(tokens))

		batch, err := s.provider.SendMulticast(ctx, &service.PushMessage{
			Tokens: tokens[start:end],
			Title:  notification.Title,
			Body:   notification.Body,
			Data:   data,
		})
		if err != nil {
			s.log(ctx).Error("Push provider request failed",
				slog.String("notification_id", notification.ID.String()),
				slog.Int("batch_start", start),
				slog.Int("tokens", end-start),
				slog.Any("error", err))

			if start == 0 {
				s.failJob(ctx, job, err)

				return nil, errors.Wrap(domainerrors.ErrDeliveryFailed, err.Error())
			}

			batchErr = err
			report.Results = append(report.Results, failedBatch(tokens[start:end], err)...)

			continue
		}
		report.Results = append(report.Results, batch.Results...)
	}

	if err := s.notificationRepo.MarkSent(ctx, notification.ID); err != nil {
		return nil, errors.Wrap(err, "failed to mark notification as sent")
	}
	notification.Sent = true

	job.Status = entity.JobStatusCompleted
	job.Attempts++
	job.LastError = ""
	if batchErr != nil {
		job.LastError = batchErr.Error()
	}
	if err := s.notificationRepo.UpdateJob(ctx, job); err != nil {
		s.log(ctx).Warn("Failed to complete notification job",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err))
	}

	s.removeUnregistered(ctx, *notification.UserID, report.UnregisteredTokens())

	s.log(ctx).Info("Push notification dispatched",
		slog.String("notification_id", notification.ID.String()),
		slog.Int("sent", report.SuccessCount()),
		slog.Int("failed", report.FailureCount()))

	return &entity.SendOutcome{
		Sent:         report.SuccessCount(),
		Failed:       report.FailureCount(),
		Notification: notification,
		Results:      report.Results,
	}, nil
}

// failedBatch reports every token of a rejected multicast request as failed.
func failedBatch(tokens []string, cause error) []entity.DeliveryResult {
	results := make([]entity.DeliveryResult, 0, len(tokens))
	for _, token := range tokens {
		results = append(results, entity.DeliveryResult{Token: token, Reason: cause.Error()})
	}

	return results
}

func (s *notificationService) failJob(ctx context.Context, job *entity.NotificationJob, cause error) {
	job.Status = entity.JobStatusFailed
	job.Attempts++
	job.LastError = cause.Error()
	if err := s.notificationRepo.UpdateJob(ctx, job); err != nil {
		s.log(ctx).Warn("Failed to record notification job failure",
			slog.String("notification_id", job.NotificationID.String()),
			slog.Any("error", err))
	}
}

// removeUnregistered drops tokens the provider reported as permanently invalid. Failures are only logged.
func (s *notificationService) removeUnregistered(ctx context.Context, userID uuid.UUID, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	removed, err := s.deviceRepo.DeleteTokens(ctx, userID, tokens)
	if err != nil {
		s.log(ctx).Warn("Failed to remove unregistered tokens",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))

		return
	}

	s.log(ctx).Info("Removed unregistered tokens",
		slog.String("user_id", userID.String()),
		slog.Int64("removed", removed))
}
