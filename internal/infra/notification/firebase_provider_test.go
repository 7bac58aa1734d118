package notification

import (
	"context"
	"fmt"
	"testing"

	"streamsync/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	calls    int
	received *messaging.MulticastMessage
	response *messaging.BatchResponse
	err      error
}

func (f *fakeMessagingClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.calls++
	f.received = message

	return f.response, f.err
}

func TestFirebaseProvider_SendMulticast_MapsResponses(t *testing.T) {
	client := &fakeMessagingClient{
		response: &messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "m-1"},
				{Success: false, Error: errors.New("quota exceeded")},
			},
		},
	}
	provider := NewProvider(client)

	report, err := provider.SendMulticast(context.Background(), &service.PushMessage{
		Tokens: []string{"tok-a", "tok-b"},
		Title:  "Hello",
		Body:   "World",
		Data:   map[string]string{"type": "test"},
	})

	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "tok-a", report.Results[0].Token)
	assert.True(t, report.Results[0].Success)
	assert.Equal(t, "tok-b", report.Results[1].Token)
	assert.False(t, report.Results[1].Success)
	assert.Equal(t, "quota exceeded", report.Results[1].Reason)
	assert.False(t, report.Results[1].Unregistered)
	assert.Equal(t, 1, report.SuccessCount())
	assert.Equal(t, 1, report.FailureCount())

	sent := client.received
	require.NotNil(t, sent)
	assert.Equal(t, []string{"tok-a", "tok-b"}, sent.Tokens)
	assert.Equal(t, "Hello", sent.Notification.Title)
	assert.Equal(t, "test", sent.Data["type"])
	assert.Equal(t, "high", sent.Android.Priority)
	assert.Equal(t, "default", sent.Android.Notification.Sound)
	assert.Equal(t, "default", sent.APNS.Payload.Aps.Sound)
	require.NotNil(t, sent.APNS.Payload.Aps.Badge)
	assert.Equal(t, 1, *sent.APNS.Payload.Aps.Badge)
}

func TestFirebaseProvider_SendMulticast_TransportError(t *testing.T) {
	client := &fakeMessagingClient{err: errors.New("connection refused")}
	provider := NewProvider(client)

	report, err := provider.SendMulticast(context.Background(), &service.PushMessage{Tokens: []string{"tok-a"}})

	require.Error(t, err)
	assert.Nil(t, report)
}

func TestFirebaseProvider_SendMulticast_NoTokens(t *testing.T) {
	client := &fakeMessagingClient{}
	provider := NewProvider(client)

	report, err := provider.SendMulticast(context.Background(), &service.PushMessage{})

	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.Zero(t, client.calls)
}

func TestFirebaseProvider_SendMulticast_TooManyTokens(t *testing.T) {
	client := &fakeMessagingClient{}
	provider := NewProvider(client)

	tokens := make([]string, MaxMulticastTokens+1)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%d", i)
	}

	_, err := provider.SendMulticast(context.Background(), &service.PushMessage{Tokens: tokens})

	require.Error(t, err)
	assert.Zero(t, client.calls)
}

func TestFirebaseProvider_SendMulticast_ShortResponse(t *testing.T) {
	client := &fakeMessagingClient{
		response: &messaging.BatchResponse{
			Responses: []*messaging.SendResponse{{Success: true}},
		},
	}
	provider := NewProvider(client)

	report, err := provider.SendMulticast(context.Background(), &service.PushMessage{Tokens: []string{"tok-a", "tok-b"}})

	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Success)
	assert.False(t, report.Results[1].Success)
	assert.Equal(t, "missing response", report.Results[1].Reason)
}

func TestFirebaseProvider_SendMulticast_DeadTokenClassification(t *testing.T) {
	errUnregistered := errors.New("registration-token-not-registered")
	errInvalid := errors.New("invalid-argument")
	errUnavailable := errors.New("unavailable")

	classify := func(err error) tokenFault {
		switch {
		case errors.Is(err, errUnregistered):
			return faultUnregistered
		case errors.Is(err, errInvalid):
			return faultInvalidArgument
		default:
			return faultTransient
		}
	}

	tests := []struct {
		name             string
		responses        []*messaging.SendResponse
		successCount     int
		wantUnregistered []string
	}{
		{
			name: "unregistered token is dead even when every token failed",
			responses: []*messaging.SendResponse{
				{Error: errUnregistered},
				{Error: errUnavailable},
			},
			wantUnregistered: []string{"tok-a"},
		},
		{
			name: "invalid argument is kept when no token accepted the payload",
			responses: []*messaging.SendResponse{
				{Error: errInvalid},
				{Error: errInvalid},
			},
			wantUnregistered: nil,
		},
		{
			name: "invalid argument is dead once another token accepted the payload",
			responses: []*messaging.SendResponse{
				{Error: errInvalid},
				{Success: true, MessageID: "m-2"},
			},
			successCount:     1,
			wantUnregistered: []string{"tok-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeMessagingClient{
				response: &messaging.BatchResponse{
					SuccessCount: tt.successCount,
					FailureCount: len(tt.responses) - tt.successCount,
					Responses:    tt.responses,
				},
			}
			provider := &firebaseProvider{client: client, classify: classify}

			report, err := provider.SendMulticast(context.Background(), &service.PushMessage{Tokens: []string{"tok-a", "tok-b"}})

			require.NoError(t, err)
			assert.Equal(t, tt.wantUnregistered, report.UnregisteredTokens())
		})
	}
}

func TestClassifyFCMError_PlainErrorIsTransient(t *testing.T) {
	assert.Equal(t, faultTransient, classifyFCMError(errors.New("connection reset")))
}
