package repository

import (
	"context"
	"errors"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows product listings.
type ProductFilter struct {
	FarmID        *uuid.UUID
	Category      string
	AvailableOnly bool
}

// ProductPatch lists the product fields to overwrite. Nil fields keep their stored
// value, so a patch without Quantity never races with reservations.
type ProductPatch struct {
	Price       *decimal.Decimal
	Quantity    *int
	Available   *bool
	Description *string
	Unit        *string
	ImageURL    *string
	UpdatedAt   time.Time
}

// ProductRepository defines the interface for store product persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Update writes the non-nil fields of patch. It returns ErrProductNotFound for an unknown id.
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch) error

	// AdjustQuantity applies delta as a single conditional update that only succeeds
	// when quantity + delta >= 0. It returns ErrInsufficientQuantity and changes nothing otherwise.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error

	// Delete removes a product permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
