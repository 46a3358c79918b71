package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mutuals/config"
	deliverycontext "mutuals/internal/delivery/context"
	"mutuals/internal/domain/constants"
	"mutuals/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishSMS(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	message := &service.SMSMessage{
		RequestID: "req-1",
		To:        "+15550001111",
		Body:      "Alice liked you",
		Reason:    service.SMSReasonUnregisteredLike,
	}

	require.NoError(t, publisher.PublishSMS(context.Background(), message))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, service.SMSReasonUnregisteredLike, received.Message.Attributes["reason"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.SMSMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *message, decoded)
}

func TestLocalHTTPPublisher_PublishSMS_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())

	err := publisher.PublishSMS(context.Background(), &service.SMSMessage{To: "+15550001111", Body: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1/sms"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "sms"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newTestLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestEncodeSMS(t *testing.T) {
	data, attributes, err := encodeSMS(&service.SMSMessage{
		To:     "+15550001111",
		Body:   "Alice liked you",
		Reason: service.SMSReasonUnregisteredLike,
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"to":"+15550001111"`)
	assert.Equal(t, map[string]string{
		"schema": smsSchemaVersion,
		"reason": service.SMSReasonUnregisteredLike,
	}, attributes)

	for name, message := range map[string]*service.SMSMessage{
		"nil":          nil,
		"no recipient": {Body: "hi"},
		"no body":      {To: "+15550001111"},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := encodeSMS(message)
			assert.ErrorIs(t, err, ErrIncompleteSMS)
		})
	}
}

func TestNoopPublisher_PublishSMS(t *testing.T) {
	publisher := &noopPublisher{logger: newTestLogger()}

	assert.NoError(t, publisher.PublishSMS(context.Background(), &service.SMSMessage{To: "+15550001111", Body: "hi"}))
	assert.ErrorIs(t, publisher.PublishSMS(context.Background(), &service.SMSMessage{}), ErrIncompleteSMS)
}
