package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"streamsync/config"
	"streamsync/internal/domain/constants"
	"streamsync/internal/domain/entity"
	domainerrors "streamsync/internal/domain/errors"
	"streamsync/internal/domain/service"
	"streamsync/internal/infra/pubsub"
	mockUC "streamsync/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUC.NewMockNotificationUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	}), notificationUC
}

func pushBody(t *testing.T, event *service.NotificationEvent) string {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event, time.Now())
	require.NoError(t, err)

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	notificationID := uuid.New()
	event := &service.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: notificationID.String(),
		UserID:         uuid.NewString(),
	}

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "delivered", err: nil, wantCode: http.StatusOK},
		{name: "missing notification is acked", err: domainerrors.ErrNotificationNotFound, wantCode: http.StatusOK},
		{name: "no recipients is acked", err: domainerrors.ErrNoRecipients, wantCode: http.StatusOK},
		{name: "provider unavailable is retried", err: domainerrors.ErrProviderUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "delivery failure is retried", err: errors.Wrap(domainerrors.ErrDeliveryFailed, "fcm: deadline exceeded"), wantCode: http.StatusServiceUnavailable},
		{name: "database failure is retried", err: domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), ""), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newTestPushHandler(t)

			var outcome *entity.SendOutcome
			if tt.err == nil {
				outcome = &entity.SendOutcome{Sent: 1}
			}
			notificationUC.EXPECT().DeliverQueued(mock.Anything, notificationID).Return(outcome, tt.err)

			rec := servePush(h, pushBody(t, event))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t)

	t.Run("not json", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, servePush(h, "{").Code)
	})

	t.Run("data is not base64", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`).Code)
	})

	t.Run("invalid notification id is acked without delivery", func(t *testing.T) {
		rec := servePush(h, pushBody(t, &service.NotificationEvent{NotificationID: "not-a-uuid"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_Verification(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := servePush(h, pushBody(t, &service.NotificationEvent{NotificationID: uuid.NewString()}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesGooglePushOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: mockUC.NewMockNotificationUsecase(t),
	})

	assert.NotNil(t, h.verify)
}

func TestExtractRequestID(t *testing.T) {
	envelope := &pubsub.PushEnvelope{}
	event := &service.NotificationEvent{RequestID: "from-event"}

	assert.Equal(t, "from-event", extractRequestID(t.Context(), envelope, event))

	envelope.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", extractRequestID(t.Context(), envelope, event))

	generated := extractRequestID(t.Context(), &pubsub.PushEnvelope{}, &service.NotificationEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
