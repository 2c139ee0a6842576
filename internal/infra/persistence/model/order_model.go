package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The aggregate status is derived and has no column.
type OrderModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ConsumerID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	EstimatedDeliveryTime *time.Time
	DeliveryCodeHash      string `gorm:"type:varchar(255)"`
	DeliveryCodeExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	FarmOrders []*FarmOrderModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// FarmOrderModel mirrors the 'farm_orders' table.
// FarmID carries no foreign key so farm orders survive the deletion of their farm.
type FarmOrderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       string    `gorm:"type:varchar(16);not null;index"`
	DeliveryTime *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []*OrderItemModel `gorm:"foreignKey:FarmOrderID"`
}

// TableName explicitly sets the table name for GORM.
func (FarmOrderModel) TableName() string {
	return "farm_orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FarmOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(128);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
