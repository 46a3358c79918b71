// Package sms renders text messages and hands them to the SMS gateway queue.
package sms

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"text/template"
	"unicode/utf8"

	deliverycontext "mutuals/internal/delivery/context"
	"mutuals/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxBodyLength is the longest body sent, in runes.
const maxBodyLength = 320

type templateNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger

	mu        sync.Mutex
	templates map[string]*template.Template
}

// NotifierParams holds dependencies for the SMS notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSMSNotifier creates a notifier that publishes rendered messages through the event publisher.
func NewSMSNotifier(params NotifierParams) service.SMSNotifier {
	return &templateNotifier{
		publisher: params.Publisher,
		logger:    params.Logger,
		templates: make(map[string]*template.Template),
	}
}

func (n *templateNotifier) Send(ctx context.Context, phone, tmpl string, args map[string]string) error {
	parsed, err := n.parse(tmpl)
	if err != nil {
		return err
	}

	var body strings.Builder
	if err := parsed.Execute(&body, args); err != nil {
		return errors.Wrap(err, "failed to render sms template")
	}

	message := &service.SMSMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        phone,
		Body:      truncate(body.String(), maxBodyLength),
		Reason:    service.SMSReasonUnregisteredLike,
	}

	if err := n.publisher.PublishSMS(ctx, message); err != nil {
		return errors.Wrap(err, "failed to publish sms")
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Debug("SMS queued",
		slog.String("reason", message.Reason),
		slog.Int("length", len(message.Body)),
	)

	return nil
}

// parse compiles tmpl once; templates come from configuration so the set is small.
func (n *templateNotifier) parse(tmpl string) (*template.Template, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if parsed, ok := n.templates[tmpl]; ok {
		return parsed, nil
	}

	parsed, err := template.New("sms").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse sms template")
	}
	n.templates[tmpl] = parsed

	return parsed, nil
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit])
}
