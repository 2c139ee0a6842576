// Package consumer drives the order engine from the checkout event stream.
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"harvest/config"
	"harvest/internal/delivery"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	maxAttempts    = 3
	retryBackoff   = 200 * time.Millisecond
	jobsPerWorker  = 64
	defaultWorkers = 1
)

// messageReader is the subset of *kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderConsumerParams holds dependencies for the consumer, injected by Fx
type OrderConsumerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	OrderUC usecase.OrderUsecase
}

type orderConsumer struct {
	reader  messageReader
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
	workers int
	topic   string

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

type disabledConsumer struct {
	logger *slog.Logger
}

func (d *disabledConsumer) Serve(context.Context) error {
	d.logger.Info("Kafka disabled, orders.placed consumer not started")

	return nil
}

// NewOrderConsumer subscribes to the placed-orders topic. Each message is a JSON entity.PlacedOrder.
func NewOrderConsumer(params OrderConsumerParams) (delivery.Delivery, error) {
	cfg := params.Config.Kafka
	if cfg == nil || !cfg.Enabled {
		return &disabledConsumer{logger: params.Logger}, nil
	}
	if len(cfg.Brokers) == 0 || cfg.OrdersTopic == "" || cfg.GroupID == "" {
		return nil, errors.New("kafka brokers, ordersTopic and groupId are required")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.OrdersTopic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // commit explicitly after processing
	})

	c := newOrderConsumer(reader, params.OrderUC, params.Logger, cfg.Workers)
	c.topic = cfg.OrdersTopic

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

func newOrderConsumer(reader messageReader, orderUC usecase.OrderUsecase, logger *slog.Logger, workers int) *orderConsumer {
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &orderConsumer{
		reader:  reader,
		orderUC: orderUC,
		logger:  logger,
		workers: workers,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Serve fetches messages until stopped. Messages of one partition always go to the same
// worker so offsets are committed in order.
func (c *orderConsumer) Serve(ctx context.Context) error {
	c.started.Store(true)
	defer close(c.done)
	defer c.reader.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	c.logger.Info("Starting orders consumer", slog.String("topic", c.topic), slog.Int("workers", c.workers))

	jobs := make([]chan kafka.Message, c.workers)
	var wg sync.WaitGroup
	for i := range jobs {
		jobs[i] = make(chan kafka.Message, jobsPerWorker)
		wg.Add(1)
		go func(in <-chan kafka.Message) {
			defer wg.Done()
			for m := range in {
				c.process(ctx, m)
			}
		}(jobs[i])
	}
	defer func() {
		for _, ch := range jobs {
			close(ch)
		}
		wg.Wait()
	}()

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to fetch message")
		}

		select {
		case jobs[m.Partition%c.workers] <- m:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *orderConsumer) stop(ctx context.Context) error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	if !c.started.Load() {
		return nil
	}
	c.logger.Info("Stopping orders consumer")

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// process ingests one message and commits it unless the consumer is shutting down.
// Messages that fail validation or keep failing are logged and committed so the partition moves on.
func (c *orderConsumer) process(ctx context.Context, m kafka.Message) {
	logger := c.logger.With(
		slog.Int("partition", m.Partition),
		slog.Int64("offset", m.Offset),
		slog.String("key", string(m.Key)),
	)
	msgCtx := deliverycontext.WithLogger(ctx, logger)

	if err := c.handle(msgCtx, logger, m); err != nil {
		if ctx.Err() != nil {
			// Left uncommitted; the next group member picks it up again
			return
		}
		logger.Error("Dropping checkout event", slog.Any("error", err))
	}

	if err := c.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
		logger.Error("Failed to commit offset", slog.Any("error", err))
	}
}

func (c *orderConsumer) handle(ctx context.Context, logger *slog.Logger, m kafka.Message) error {
	var placed entity.PlacedOrder
	if err := json.Unmarshal(m.Value, &placed); err != nil {
		return errors.Wrap(err, "malformed checkout event")
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		order, err := c.orderUC.IngestOrder(ctx, &placed)
		if err == nil {
			logger.Info("Order ingested",
				slog.String("order_id", order.ID.String()),
				slog.Int("farm_orders", len(order.FarmOrders)),
			)

			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err

		logger.Warn("Order ingestion failed, retrying", slog.Int("attempt", attempt), slog.Any("error", err))
		select {
		case <-time.After(retryBackoff * time.Duration(attempt)):
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		}
	}

	return lastErr
}

// isRetryable treats business rejections (4xx) as final and everything else as transient.
func isRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}
