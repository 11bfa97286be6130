package pubsub

import (
	"context"
	"log/slog"

	deliverycontext "envelope/internal/delivery/context"
	"envelope/internal/domain/constants"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes note events to a Google Cloud Pub/Sub topic
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails when topicID does
// not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "get topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishNoteEvent waits for the server to acknowledge the event. Failures
// are THIRD_PARTY_ERROR.
func (p *googlePubSubPublisher) PublishNoteEvent(ctx context.Context, event *service.NoteEvent) error {
	msg, err := encodeNoteEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed
		p.publisher.ResumePublish(msg.orderingKey)

		return domainerrors.NewThirdPartyError(err, constants.ServiceGooglePubSub)
	}

	deliverycontext.LoggerFrom(ctx, p.logger).Debug("Note event published",
		slog.String("publisher", constants.ServiceGooglePubSub),
		slog.String("note_id", event.NoteID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
