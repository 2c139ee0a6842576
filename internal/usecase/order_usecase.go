package usecase

import (
	"context"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase is the order engine: intake, per-farm fulfilment and delivery confirmation
type OrderUsecase interface {
	// IngestOrder persists a placed order and reserves its product quantities
	IngestOrder(ctx context.Context, placed *entity.PlacedOrder) (*entity.Order, error)

	// SetFarmOrderStatus advances a farm order along the fulfilment graph
	SetFarmOrderStatus(ctx context.Context, actor *entity.Actor, farmOrderID uuid.UUID, status entity.FarmOrderStatus, deliveryTime *time.Time) (*entity.FarmOrder, error)

	// SetFarmOrderDeliveryTime sets the delivery time of a non-terminal farm order
	SetFarmOrderDeliveryTime(ctx context.Context, actor *entity.Actor, farmOrderID uuid.UUID, deliveryTime time.Time) (*entity.FarmOrder, error)

	// GetOrder retrieves an order with its farm orders
	GetOrder(ctx context.Context, actor *entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// GetOrderAggregateStatus derives the order status from its farm orders
	GetOrderAggregateStatus(ctx context.Context, actor *entity.Actor, orderID uuid.UUID) (entity.FarmOrderStatus, error)

	// ListMyOrders lists the calling consumer's orders
	ListMyOrders(ctx context.Context, actor *entity.Actor) ([]*entity.Order, error)

	// ListFarmOrders lists the farm orders a farm must fulfil
	ListFarmOrders(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) ([]*entity.FarmOrder, error)

	// IssueDeliveryCode generates a pickup code for the consumer's order
	IssueDeliveryCode(ctx context.Context, actor *entity.Actor, orderID uuid.UUID) (*entity.DeliveryCode, error)

	// ConfirmDelivery verifies a pickup code and marks a READY farm order DELIVERED
	ConfirmDelivery(ctx context.Context, actor *entity.Actor, farmOrderID uuid.UUID, code string) (*entity.FarmOrder, error)

	// ExportFarmOrders renders a farm's orders as a spreadsheet
	ExportFarmOrders(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) ([]byte, error)
}
