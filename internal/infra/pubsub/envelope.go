package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"streamsync/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/notification-sub"

// PushEnvelope is the body Google Pub/Sub posts to push endpoints.
// The local publisher produces the same shape so the worker handles both identically.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps an event the way a push subscription would deliver it.
func NewPushEnvelope(event *service.NotificationEvent, now time.Time) (*PushEnvelope, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	envelope.Message.Attributes = EventAttributes(event)
	envelope.Message.MessageID = event.NotificationID
	envelope.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return envelope, nil
}

// DecodeEvent extracts the notification event carried in the message data.
func (e *PushEnvelope) DecodeEvent() (*service.NotificationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse notification event")
	}

	if event.NotificationID == "" {
		return nil, errors.New("notification_id is required")
	}

	return &event, nil
}

// EventAttributes returns the message attributes used for filtering and tracing.
func EventAttributes(event *service.NotificationEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": event.NotificationID,
		"user_id":         event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
