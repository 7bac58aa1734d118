package service

import (
	"context"

	"streamsync/internal/domain/entity"
)

// PushMessage is one multicast request addressed to several device tokens.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// DeliveryProvider sends push notifications to device tokens.
type DeliveryProvider interface {
	// SendMulticast delivers msg to every token and reports one result per token.
	// A returned error means the request as a whole failed; per-token rejections are not errors.
	SendMulticast(ctx context.Context, msg *PushMessage) (*entity.DeliveryReport, error)
}
