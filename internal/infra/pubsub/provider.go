package pubsub

import (
	"context"
	"log/slog"

	"envelope/config"
	deliverycontext "envelope/internal/delivery/context"
	"envelope/internal/domain/constants"
	"envelope/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discardPublisher accepts every event without sending it
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishNoteEvent(ctx context.Context, event *service.NoteEvent) error {
	deliverycontext.LoggerFrom(ctx, p.logger).Debug("Event publishing disabled, dropping note event",
		slog.String("note_id", event.NoteID),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

type publisherFactory func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var publisherFactories = map[string]publisherFactory{
	constants.PubSubProviderLocal: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		logger.Info("Publishing note events over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	},
	constants.PubSubProviderGoogle: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		logger.Info("Publishing note events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	},
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. An empty
// provider discards events.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, note events are discarded")

		return &discardPublisher{logger: logger}, nil
	}

	factory, ok := publisherFactories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrapf(err, "invalid %s pubsub config", cfg.Provider)
	}

	publisher, err := factory(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
