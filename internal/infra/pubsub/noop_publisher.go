package pubsub

import (
	"context"
	"log/slog"

	"mutuals/internal/domain/service"
)

// noopPublisher drops SMS requests when no gateway is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSMS(ctx context.Context, message *service.SMSMessage) error {
	if _, _, err := encodeSMS(message); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "SMS gateway disabled, dropping request",
		slog.String("reason", message.Reason),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
