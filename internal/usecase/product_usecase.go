package usecase

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SendToStoreInput represents a transfer of planted crop stock into a new store product
type SendToStoreInput struct {
	PlantedCropID  uuid.UUID       `json:"planted_crop_id" validate:"required"`
	QuantityToSend int             `json:"quantity"`
	Unit           string          `json:"unit" validate:"required,max=32"`
	PricePerUnit   decimal.Decimal `json:"price"`
	Description    string          `json:"description" validate:"max=2000"`
}

// CreateProductInput represents an admin-created product with no planted crop behind it
type CreateProductInput struct {
	CropName    string          `json:"crop_name" validate:"required,max=128"`
	Description string          `json:"description" validate:"max=2000"`
	Category    string          `json:"category" validate:"required,max=64"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Unit        string          `json:"unit" validate:"required,max=32"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`

	// FarmID binds the product to the approved farm that fulfils it. Unbound products cannot be ordered.
	FarmID *uuid.UUID `json:"farm_id,omitempty"`
}

// UpdateProductInput is a partial product update; nil fields are left untouched
type UpdateProductInput struct {
	Price       *decimal.Decimal `json:"price,omitempty"`
	Available   *bool            `json:"available,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Quantity    *int             `json:"quantity,omitempty"`
	Unit        *string          `json:"unit,omitempty" validate:"omitempty,max=32"`
	ImageURL    *string          `json:"image_url,omitempty" validate:"omitempty,url"`
}

// ProductUsecase manages store products
type ProductUsecase interface {
	// CreateFromCrop moves stock from a planted crop into a new product in one transaction
	CreateFromCrop(ctx context.Context, actor *entity.Actor, input *SendToStoreInput) (*entity.Product, error)

	// Create adds a product directly (admin only)
	Create(ctx context.Context, actor *entity.Actor, input *CreateProductInput) (*entity.Product, error)

	// Update patches a product without touching any other entity
	Update(ctx context.Context, actor *entity.Actor, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes a product; its quantity is not returned to the planted crop
	Delete(ctx context.Context, actor *entity.Actor, productID uuid.UUID) error

	// Get retrieves a product
	Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// List lists products matching the filter
	List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)
}
