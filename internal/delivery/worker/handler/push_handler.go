package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"streamsync/config"
	deliverycontext "streamsync/internal/delivery/context"
	"streamsync/internal/domain/constants"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/service"
	"streamsync/internal/infra/pubsub"
	"streamsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks a failure that Pub/Sub should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes notification events pushed by Pub/Sub and delivers them.
type PushHandler struct {
	verify         func(*http.Request) error
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push requests are authenticated with
// Google-signed ID tokens when the google provider runs outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	handler := &PushHandler{
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}

	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		handler.verify = verifyPubSubToken
	}

	return handler
}

// HandlePush answers 200 when the event was handled or can never succeed, and 503 when
// Pub/Sub should retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("notification_id", event.NotificationID),
		slog.String("message_id", envelope.Message.MessageID),
	)

	if err := h.deliver(ctx, event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to deliver notification",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)

		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) deliver(ctx context.Context, event *service.NotificationEvent) error {
	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return errors.Wrap(err, "invalid notification_id")
	}

	outcome, err := h.notificationUC.DeliverQueued(ctx, notificationID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotificationNotFound) || errors.Is(err, domainerrors.ErrNoRecipients) {
			return err
		}

		return newRetryableError(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Notification delivered",
		slog.String("notification_id", event.NotificationID),
		slog.Int("sent", outcome.Sent),
		slog.Int("failed", outcome.Failed),
	)

	return nil
}

// extractRequestID prefers the message attribute, then the event payload, then the
// X-Request-Id of the push request itself.
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.NotificationEvent) string {
	if requestID := envelope.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
