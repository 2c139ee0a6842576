package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FarmOrderStatus is the fulfilment state of one farm's share of an order.
type FarmOrderStatus string

const (
	FarmOrderStatusPending   FarmOrderStatus = "PENDING"
	FarmOrderStatusReady     FarmOrderStatus = "READY"
	FarmOrderStatusDelivered FarmOrderStatus = "DELIVERED"
	FarmOrderStatusCanceled  FarmOrderStatus = "CANCELED"
)

// farmOrderTransitions is the forward-only fulfilment graph.
var farmOrderTransitions = map[FarmOrderStatus][]FarmOrderStatus{
	FarmOrderStatusPending: {FarmOrderStatusReady, FarmOrderStatusCanceled},
	FarmOrderStatusReady:   {FarmOrderStatusDelivered},
}

// IsValid checks if the FarmOrderStatus is a known value.
func (s FarmOrderStatus) IsValid() bool {
	switch s {
	case FarmOrderStatusPending, FarmOrderStatusReady, FarmOrderStatusDelivered, FarmOrderStatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s FarmOrderStatus) IsTerminal() bool {
	return s == FarmOrderStatusDelivered || s == FarmOrderStatusCanceled
}

// CanTransitionTo reports whether s -> next is an edge of the fulfilment graph.
// Same-state moves are not edges.
func (s FarmOrderStatus) CanTransitionTo(next FarmOrderStatus) bool {
	for _, allowed := range farmOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// OrderItem is one product line of a farm order, priced at checkout time.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	FarmOrderID uuid.UUID       `json:"farm_order_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity times unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// FarmOrder is the portion of an order fulfilled by a single farm.
type FarmOrder struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"order_id"`
	FarmID       uuid.UUID       `json:"farm_id"`
	Status       FarmOrderStatus `json:"status"`
	DeliveryTime *time.Time      `json:"delivery_time,omitempty"`
	Items        []OrderItem     `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Total returns the sum of the item subtotals.
func (fo *FarmOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range fo.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// Order is a consumer purchase decomposed into farm orders.
// Its status is derived from the farm orders on every read and never stored.
type Order struct {
	ID                    uuid.UUID       `json:"id"`
	ConsumerID            uuid.UUID       `json:"consumer_id"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	CreatedAt             time.Time       `json:"created_at"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time,omitempty"`
	DeliveryCodeHash      string          `json:"-"`
	DeliveryCodeExpiresAt *time.Time      `json:"delivery_code_expires_at,omitempty"`
	FarmOrders            []*FarmOrder    `json:"farm_orders"`
}

// Status derives the aggregate status from the farm orders.
func (o *Order) Status() FarmOrderStatus {
	statuses := make([]FarmOrderStatus, 0, len(o.FarmOrders))
	for _, fo := range o.FarmOrders {
		statuses = append(statuses, fo.Status)
	}

	return AggregateOrderStatus(statuses)
}

// ComputeTotal returns the sum of the farm order totals.
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, fo := range o.FarmOrders {
		total = total.Add(fo.Total())
	}

	return total
}

// FarmOrder returns the farm order with the given ID, or nil.
func (o *Order) FarmOrder(id uuid.UUID) *FarmOrder {
	for _, fo := range o.FarmOrders {
		if fo.ID == id {
			return fo
		}
	}

	return nil
}

// AggregateOrderStatus derives an order status from its farm order statuses:
// DELIVERED when all are DELIVERED or CANCELED and at least one is DELIVERED,
// READY when at least one is READY and none is PENDING, PENDING otherwise.
func AggregateOrderStatus(statuses []FarmOrderStatus) FarmOrderStatus {
	var pending, ready, delivered, canceled int
	for _, s := range statuses {
		switch s {
		case FarmOrderStatusPending:
			pending++
		case FarmOrderStatusReady:
			ready++
		case FarmOrderStatusDelivered:
			delivered++
		case FarmOrderStatusCanceled:
			canceled++
		}
	}

	switch {
	case len(statuses) > 0 && delivered > 0 && delivered+canceled == len(statuses):
		return FarmOrderStatusDelivered
	case ready > 0 && pending == 0:
		return FarmOrderStatusReady
	default:
		return FarmOrderStatusPending
	}
}

// PlacedOrder is the checkout event the order engine ingests.
type PlacedOrder struct {
	OrderID               uuid.UUID         `json:"order_id"`
	ConsumerID            uuid.UUID         `json:"consumer_id"`
	EstimatedDeliveryTime *time.Time        `json:"estimated_delivery_time,omitempty"`
	FarmOrders            []PlacedFarmOrder `json:"farm_orders"`
}

// PlacedFarmOrder is one farm's share of a placed order.
type PlacedFarmOrder struct {
	FarmID uuid.UUID    `json:"farm_id"`
	Items  []PlacedItem `json:"items"`
}

// PlacedItem is a product line of a placed order.
type PlacedItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// DeliveryCode is a freshly issued pickup code. The plain code is only ever returned once.
type DeliveryCode struct {
	OrderID   uuid.UUID `json:"order_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	QRCode    []byte    `json:"qr_code"`
}
