package pubsub

import (
	"context"
	"log/slog"
	"time"

	"mutuals/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Invites are sent one at a time from a request path, so batching only adds latency.
const googlePublishDelay = 10 * time.Millisecond

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

func topicName(projectID, topicID string) string {
	return "projects/" + projectID + "/topics/" + topicID
}

// NewGooglePubSubPublisher connects to the SMS gateway topic, failing fast when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	name := topicName(projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "sms gateway topic %s", name)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = googlePublishDelay
	publisher.PublishSettings.CountThreshold = 1

	logger.Info("SMS gateway topic ready", slog.String("topic", name))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishSMS blocks until the server acknowledges the message or ctx ends.
func (p *googlePubSubPublisher) PublishSMS(ctx context.Context, message *service.SMSMessage) error {
	data, attributes, err := encodeSMS(message)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish sms request")
	}

	p.logger.DebugContext(ctx, "SMS request published",
		slog.String("reason", message.Reason),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
