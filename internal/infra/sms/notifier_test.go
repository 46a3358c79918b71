package sms

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	deliverycontext "mutuals/internal/delivery/context"
	"mutuals/internal/domain/service"
	mockService "mutuals/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotifierForTest(t *testing.T) (service.SMSNotifier, *mockService.MockEventPublisher) {
	t.Helper()

	publisher := mockService.NewMockEventPublisher(t)
	notifier := NewSMSNotifier(NotifierParams{
		Publisher: publisher,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return notifier, publisher
}

func TestTemplateNotifier_Send(t *testing.T) {
	notifier, publisher := newNotifierForTest(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().PublishSMS(mock.Anything, &service.SMSMessage{
		RequestID: "req-42",
		To:        "+15550001111",
		Body:      "Alice liked you: https://mutuals.test/invite",
		Reason:    service.SMSReasonUnregisteredLike,
	}).Return(nil).Once()

	err := notifier.Send(ctx, "+15550001111", "{{.InviterName}} liked you: {{.InviteURL}}", map[string]string{
		"InviterName": "Alice",
		"InviteURL":   "https://mutuals.test/invite",
	})
	require.NoError(t, err)
}

func TestTemplateNotifier_Send_PublisherFailure(t *testing.T) {
	notifier, publisher := newNotifierForTest(t)

	publisher.EXPECT().PublishSMS(mock.Anything, mock.Anything).Return(errors.New("topic unavailable"))

	err := notifier.Send(context.Background(), "+15550001111", "hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic unavailable")
}

func TestTemplateNotifier_Send_TemplateErrors(t *testing.T) {
	notifier, _ := newNotifierForTest(t)

	err := notifier.Send(context.Background(), "+15550001111", "{{.Broken", nil)
	assert.Error(t, err)

	err = notifier.Send(context.Background(), "+15550001111", "{{.Missing}}", map[string]string{})
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Len(t, truncate(strings.Repeat("a", 400), maxBodyLength), maxBodyLength)
	// The limit counts runes, not bytes.
	assert.Equal(t, "abç", truncate("abç", 3))
	assert.Equal(t, "abç", truncate("abçd", 3))
	assert.Equal(t, maxBodyLength, utf8.RuneCountInString(truncate(strings.Repeat("ç", 400), maxBodyLength)))
}
