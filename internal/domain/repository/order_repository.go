package repository

import (
	"context"
	"errors"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrFarmOrderNotFound is returned when a farm order is not found.
	ErrFarmOrderNotFound = errors.New("farm order not found")
	// ErrDuplicateOrder is returned when an order with the same ID already exists.
	ErrDuplicateOrder = errors.New("order already exists")
	// ErrFarmOrderStatusChanged is returned when a conditional status update lost the race.
	ErrFarmOrderStatusChanged = errors.New("farm order status changed concurrently")
)

// OrderRepository defines the interface for order and farm order persistence.
type OrderRepository interface {
	// Create persists an order together with its farm orders and items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with all farm orders and items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByConsumer retrieves all orders placed by a consumer.
	FindByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error)

	// FindFarmOrderByID retrieves a single farm order with its items.
	FindFarmOrderByID(ctx context.Context, id uuid.UUID) (*entity.FarmOrder, error)

	// FindFarmOrdersByFarm retrieves all farm orders fulfilled by a farm.
	FindFarmOrdersByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.FarmOrder, error)

	// UpdateFarmOrderStatus moves a farm order from one status to another only if it is still in from.
	// It returns ErrFarmOrderStatusChanged when the farm order exists but is no longer in from.
	UpdateFarmOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.FarmOrderStatus, deliveryTime *time.Time) error

	// UpdateFarmOrderDeliveryTime sets the delivery time of a farm order.
	UpdateFarmOrderDeliveryTime(ctx context.Context, id uuid.UUID, deliveryTime time.Time) error

	// SetDeliveryCode stores the hashed pickup code and its expiry on the order.
	SetDeliveryCode(ctx context.Context, orderID uuid.UUID, codeHash string, expiresAt time.Time) error
}
