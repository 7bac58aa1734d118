// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"streamsync/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotificationJobNotFound is returned when a notification has no job row.
	ErrNotificationJobNotFound = errors.New("notification job not found")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new, unsent notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByUser returns non-deleted notifications of a user, newest received first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkSent flags the notification as delivered to the provider.
	MarkSent(ctx context.Context, id uuid.UUID) error

	// MarkRead flags the notification as read when it belongs to userID and returns the rows affected.
	MarkRead(ctx context.Context, id, userID uuid.UUID) (int64, error)

	// SoftDelete hides the notification when it belongs to userID and returns the rows affected.
	SoftDelete(ctx context.Context, id, userID uuid.UUID) (int64, error)

	// CountUnread counts non-deleted, unread notifications of a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// CreateJob persists the delivery job of a notification.
	CreateJob(ctx context.Context, job *entity.NotificationJob) error

	// FindJobByNotificationID retrieves the delivery job of a notification.
	FindJobByNotificationID(ctx context.Context, notificationID uuid.UUID) (*entity.NotificationJob, error)

	// UpdateJob stores the status, attempt count and last error of a job.
	UpdateJob(ctx context.Context, job *entity.NotificationJob) error
}
