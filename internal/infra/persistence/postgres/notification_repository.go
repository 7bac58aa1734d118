// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/repository"
	"streamsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultNotificationListLimit = 50

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new notification record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid notification recipient")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.ReceivedAt = notificationM.ReceivedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByUser retrieves the visible notifications of a user, newest received first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if limit <= 0 {
		limit = defaultNotificationListLimit
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("received_at DESC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkSent flags the notification as handed to the delivery provider.
func (repo *notificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("sent", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as sent")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkRead flags the notification as read when it belongs to userID.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark notification as read")
	}

	return result.RowsAffected, nil
}

// SoftDelete hides the notification when it belongs to userID.
func (repo *notificationRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_deleted", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notification")
	}

	return result.RowsAffected, nil
}

// CountUnread counts the visible, unread notifications of a user.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ? AND is_deleted = ?", userID, false, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// CreateJob persists the delivery job of a notification.
func (repo *notificationRepository) CreateJob(ctx context.Context, job *entity.NotificationJob) error {
	jobM := fromNotificationJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("notification already has a delivery job")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotificationNotFound.WrapMessage("invalid notification reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// FindJobByNotificationID retrieves the delivery job of a notification.
func (repo *notificationRepository) FindJobByNotificationID(ctx context.Context, notificationID uuid.UUID) (*entity.NotificationJob, error) {
	var jobM model.NotificationJobModel

	if err := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification job")
	}

	return toNotificationJobDomain(&jobM), nil
}

// UpdateJob stores the status, attempt count and last error of a job.
func (repo *notificationRepository) UpdateJob(ctx context.Context, job *entity.NotificationJob) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationJobModel{}).
		Where("id = ?", job.ID).
		Updates(map[string]interface{}{
			"status":     string(job.Status),
			"attempts":   job.Attempts,
			"last_error": job.LastError,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationJobNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Body:       data.Body,
		Metadata:   data.Metadata,
		Sent:       data.Sent,
		IsRead:     data.IsRead,
		IsDeleted:  data.IsDeleted,
		ReceivedAt: data.ReceivedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Body:       data.Body,
		Metadata:   data.Metadata,
		Sent:       data.Sent,
		IsRead:     data.IsRead,
		IsDeleted:  data.IsDeleted,
		ReceivedAt: data.ReceivedAt,
	}
}

func toNotificationJobDomain(data *model.NotificationJobModel) *entity.NotificationJob {
	if data == nil {
		return nil
	}

	return &entity.NotificationJob{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		Status:         entity.JobStatus(data.Status),
		Attempts:       data.Attempts,
		LastError:      data.LastError,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromNotificationJobDomain(data *entity.NotificationJob) *model.NotificationJobModel {
	if data == nil {
		return nil
	}

	return &model.NotificationJobModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		Status:         string(data.Status),
		Attempts:       data.Attempts,
		LastError:      data.LastError,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
