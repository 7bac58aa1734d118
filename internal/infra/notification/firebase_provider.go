// Package notification contains push delivery providers.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"streamsync/config"
	"streamsync/internal/domain/entity"
	"streamsync/internal/domain/service"
	"streamsync/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the per-request token limit of FCM multicast sends.
const MaxMulticastTokens = 500

// MessagingClient is the subset of the FCM client used for delivery.
type MessagingClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// tokenFault classifies a per-token FCM rejection.
type tokenFault int

const (
	faultTransient tokenFault = iota
	faultUnregistered
	faultInvalidArgument
)

type firebaseProvider struct {
	client   MessagingClient
	classify func(error) tokenFault
}

// Params defines the dependencies of the Firebase provider.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseProvider builds the FCM-backed delivery provider. Firebase is optional: a nil
// provider is returned when no credentials are configured.
func NewFirebaseProvider(params Params) (service.DeliveryProvider, error) {
	cfg := params.Config.Firebase
	if cfg == nil || strings.TrimSpace(cfg.CredentialsPath) == "" {
		params.Logger.Warn("Firebase not configured, push delivery is disabled")

		return nil, nil
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return NewProvider(client), nil
}

// NewProvider wraps an FCM client.
func NewProvider(client MessagingClient) service.DeliveryProvider {
	return &firebaseProvider{client: client, classify: classifyFCMError}
}

// SendMulticast sends msg to up to MaxMulticastTokens tokens and maps the per-token responses.
func (p *firebaseProvider) SendMulticast(ctx context.Context, msg *service.PushMessage) (*entity.DeliveryReport, error) {
	if msg == nil || len(msg.Tokens) == 0 {
		return &entity.DeliveryReport{}, nil
	}

	if len(msg.Tokens) > MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(msg.Tokens), MaxMulticastTokens)
	}

	response, err := p.client.SendEachForMulticast(ctx, buildMulticastMessage(msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &entity.DeliveryReport{
		Results: make([]entity.DeliveryResult, 0, len(msg.Tokens)),
	}
	for idx, token := range msg.Tokens {
		result := entity.DeliveryResult{Token: token}

		if idx >= len(response.Responses) || response.Responses[idx] == nil {
			result.Reason = "missing response"
			report.Results = append(report.Results, result)

			continue
		}

		sendResponse := response.Responses[idx]
		if sendResponse.Success {
			result.Success = true
		} else if sendResponse.Error != nil {
			result.Reason = sendResponse.Error.Error()
			result.Unregistered = p.isDeadToken(sendResponse.Error, response.SuccessCount > 0)
		}

		report.Results = append(report.Results, result)
	}

	return report, nil
}

func buildMulticastMessage(msg *service.PushMessage) *messaging.MulticastMessage {
	badge := 1

	return &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:    "default",
				Priority: messaging.PriorityHigh,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
					Badge: &badge,
				},
			},
		},
	}
}

// isDeadToken reports whether the rejection means the token itself is unusable. FCM answers
// INVALID_ARGUMENT both for malformed tokens and for bad payloads, so it only condemns the token
// when another token of the same request accepted the payload.
func (p *firebaseProvider) isDeadToken(err error, payloadAccepted bool) bool {
	switch p.classify(err) {
	case faultUnregistered:
		return true
	case faultInvalidArgument:
		return payloadAccepted
	default:
		return false
	}
}

func classifyFCMError(err error) tokenFault {
	switch {
	case messaging.IsUnregistered(err), messaging.IsRegistrationTokenNotRegistered(err):
		return faultUnregistered
	case messaging.IsInvalidArgument(err):
		return faultInvalidArgument
	default:
		return faultTransient
	}
}
