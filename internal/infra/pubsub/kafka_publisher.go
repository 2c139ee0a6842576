package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaPublisher implements EventPublisher on a Kafka topic.
// Messages are keyed by aggregate ID so events of one order or farm stay on one partition.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous Kafka writer for domain events
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event *entity.DomainEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attrs := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attrs))
	for k, v := range attrs {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	msg := kafka.Message{
		Key:     []byte(event.AggregateID.String()),
		Value:   value,
		Time:    event.OccurredAt,
		Headers: headers,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to write event %s", event.Type)
	}

	p.logger.Debug("[KafkaPubSub] Event published",
		slog.String("topic", p.writer.Topic),
		slog.String("event_type", event.Type),
		slog.String("event_id", event.ID.String()),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
