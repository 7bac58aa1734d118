package service

import (
	"context"
)

// NotificationEvent asks the worker to deliver a queued notification.
type NotificationEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string `json:"notification_id"`
	UserID         string `json:"user_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
