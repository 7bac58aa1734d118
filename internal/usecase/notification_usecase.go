package usecase

import (
	"context"

	"streamsync/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase sends push notifications and manages the user's notification inbox.
type NotificationUsecase interface {
	// SendToUser delivers a test notification to every device of userID right away.
	SendToUser(ctx context.Context, userID uuid.UUID, title, body string) (*entity.SendOutcome, error)

	// QueueToUser records a notification with a pending job and hands it to the worker.
	QueueToUser(ctx context.Context, userID uuid.UUID, title, body string) (*entity.Notification, error)

	// DeliverQueued sends a previously queued notification. Already sent notifications are not resent.
	DeliverQueued(ctx context.Context, notificationID uuid.UUID) (*entity.SendOutcome, error)

	// ListNotifications returns the user's non-deleted notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkRead flags a notification of userID as read.
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error

	// SoftDelete hides a notification of userID.
	SoftDelete(ctx context.Context, notificationID, userID uuid.UUID) error

	// UnreadCount counts the user's unread notifications.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
