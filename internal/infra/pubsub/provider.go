package pubsub

import (
	"context"
	"log/slog"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops order and farm events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *entity.DomainEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event",
		slog.String("event_type", event.Type),
		slog.String("aggregate_id", event.AggregateID.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the event transport named by pubsub.provider and
// closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := openPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	ps := cfg.PubSub
	if ps == nil || ps.Provider == "" {
		logger.Info("No event publisher configured, events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	switch ps.Provider {
	case constants.PubSubProviderLocal:
		if ps.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing events over HTTP", slog.String("endpoint", ps.LocalEndpoint))

		return NewLocalHTTPPublisher(ps.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if ps.ProjectID == "" || ps.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing events to Google Pub/Sub",
			slog.String("project_id", ps.ProjectID),
			slog.String("topic_id", ps.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, ps.ProjectID, ps.TopicID, logger)

	case constants.PubSubProviderKafka:
		k := cfg.Kafka
		if k == nil || len(k.Brokers) == 0 || k.EventsTopic == "" {
			return nil, errors.New("kafka.brokers and kafka.eventsTopic are required for the kafka provider")
		}
		logger.Info("Publishing events to Kafka", slog.String("topic", k.EventsTopic))

		return NewKafkaPublisher(k.Brokers, k.EventsTopic, logger), nil
	}

	return nil, errors.Errorf("unknown pubsub provider %q", ps.Provider)
}
