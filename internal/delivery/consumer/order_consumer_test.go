package consumer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	mockUsecase "harvest/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader hands out queued messages and then blocks until the context ends.
type fakeReader struct {
	msgs      chan kafka.Message
	commits   chan kafka.Message
	mu        sync.Mutex
	committed []kafka.Message
	closed    bool
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	r := &fakeReader{
		msgs:    make(chan kafka.Message, len(msgs)),
		commits: make(chan kafka.Message, len(msgs)),
	}
	for _, m := range msgs {
		r.msgs <- m
	}

	return r
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-r.msgs:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	r.committed = append(r.committed, msgs...)
	r.mu.Unlock()
	for _, m := range msgs {
		r.commits <- m
	}

	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	return nil
}

func (r *fakeReader) waitCommits(t *testing.T, n int) []int64 {
	t.Helper()

	offsets := make([]int64, 0, n)
	for range n {
		select {
		case m := <-r.commits:
			offsets = append(offsets, m.Offset)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for commit %d of %d", len(offsets)+1, n)
		}
	}

	return offsets
}

func placedMessage(t *testing.T, offset int64, placed *entity.PlacedOrder) kafka.Message {
	t.Helper()

	value, err := json.Marshal(placed)
	require.NoError(t, err)

	return kafka.Message{Partition: 0, Offset: offset, Key: []byte(placed.OrderID.String()), Value: value}
}

func newPlacedOrder() *entity.PlacedOrder {
	return &entity.PlacedOrder{
		OrderID:    uuid.New(),
		ConsumerID: uuid.New(),
		FarmOrders: []entity.PlacedFarmOrder{{
			FarmID: uuid.New(),
			Items:  []entity.PlacedItem{{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(30)}},
		}},
	}
}

// runConsumer serves c in the background and returns a function that stops it.
func runConsumer(t *testing.T, c *orderConsumer) func() {
	t.Helper()

	served := make(chan error, 1)
	go func() { served <- c.Serve(context.Background()) }()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, c.stop(ctx))
		require.NoError(t, <-served)
	}
}

func newTestConsumer(t *testing.T, reader messageReader) (*orderConsumer, *mockUsecase.MockOrderUsecase) {
	t.Helper()

	orderUC := mockUsecase.NewMockOrderUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newOrderConsumer(reader, orderUC, logger, 2), orderUC
}

func TestOrderConsumer_IngestsAndCommits(t *testing.T) {
	first, second := newPlacedOrder(), newPlacedOrder()
	reader := newFakeReader(placedMessage(t, 10, first), placedMessage(t, 11, second))
	c, orderUC := newTestConsumer(t, reader)

	for _, placed := range []*entity.PlacedOrder{first, second} {
		orderUC.EXPECT().IngestOrder(mock.Anything, mock.MatchedBy(func(p *entity.PlacedOrder) bool {
			return p.OrderID == placed.OrderID
		})).Return(&entity.Order{ID: placed.OrderID}, nil).Once()
	}

	stop := runConsumer(t, c)
	offsets := reader.waitCommits(t, 2)
	stop()

	// One partition maps to one worker, so commits keep offset order.
	assert.Equal(t, []int64{10, 11}, offsets)
	assert.True(t, reader.closed)
}

func TestOrderConsumer_BusinessRejectionIsNotRetried(t *testing.T) {
	placed := newPlacedOrder()
	reader := newFakeReader(placedMessage(t, 3, placed))
	c, orderUC := newTestConsumer(t, reader)

	orderUC.EXPECT().IngestOrder(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInsufficientQuantity).Once()

	stop := runConsumer(t, c)
	assert.Equal(t, []int64{3}, reader.waitCommits(t, 1))
	stop()
}

func TestOrderConsumer_RetriesTransientErrors(t *testing.T) {
	placed := newPlacedOrder()
	reader := newFakeReader(placedMessage(t, 7, placed))
	c, orderUC := newTestConsumer(t, reader)

	orderUC.EXPECT().IngestOrder(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()
	orderUC.EXPECT().IngestOrder(mock.Anything, mock.Anything).
		Return(&entity.Order{ID: placed.OrderID}, nil).Once()

	stop := runConsumer(t, c)
	assert.Equal(t, []int64{7}, reader.waitCommits(t, 1))
	stop()
}

func TestOrderConsumer_MalformedMessageIsCommitted(t *testing.T) {
	reader := newFakeReader(kafka.Message{Offset: 1, Value: []byte("{not json")})
	c, _ := newTestConsumer(t, reader)

	stop := runConsumer(t, c)
	assert.Equal(t, []int64{1}, reader.waitCommits(t, 1))
	stop()
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, isRetryable(domainerrors.ErrValidationFailed.WithDetails("empty order")))
	assert.False(t, isRetryable(errors.Wrap(domainerrors.ErrFarmNotApproved, "ingest")))
	assert.True(t, isRetryable(domainerrors.ErrTransactionFailed))
	assert.True(t, isRetryable(errors.New("i/o timeout")))
}

func TestOrderConsumer_StopBeforeServe(t *testing.T) {
	c, _ := newTestConsumer(t, newFakeReader())

	require.NoError(t, c.stop(context.Background()))
}
