package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
		check   func(t *testing.T, p any)
	}{
		{
			name: "unconfigured falls back to noop",
			cfg:  &config.Config{},
			check: func(t *testing.T, p any) {
				assert.IsType(t, &noopPublisher{}, p)
			},
		},
		{
			name: "local",
			cfg:  &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
			check: func(t *testing.T, p any) {
				assert.IsType(t, &localHTTPPublisher{}, p)
			},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			wantErr: true,
		},
		{
			name:    "google without topic",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
			wantErr: true,
		},
		{
			name:    "kafka without brokers",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka}, Kafka: &config.KafkaConfig{EventsTopic: "events"}},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "carrier-pigeon"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			p, err := NewEventPublisher(PublisherParams{Lc: lc, Ctx: context.Background(), Config: tt.cfg, Logger: logger})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			tt.check(t, p)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	p := &noopPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := p.Publish(context.Background(), &entity.DomainEvent{Type: "order.placed", AggregateID: uuid.New()})

	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}
