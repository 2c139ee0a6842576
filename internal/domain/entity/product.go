package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a store-facing sellable listing.
// PlantedCropID is a traceability back-reference only; a product outlives its planted crop.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	CropName      string          `json:"crop_name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	Available     bool            `json:"available"`
	ImageURL      string          `json:"image_url"`
	PlantedCropID *uuid.UUID      `json:"planted_crop_id,omitempty"`
	FarmID        *uuid.UUID      `json:"farm_id,omitempty"` // Set when the product was sent from a farm's crop.
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PriceScale is the number of decimal places prices are stored with.
const PriceScale = 2

// IsValidPrice reports whether price is positive and representable in the stored scale,
// so it cannot round to zero on write.
func IsValidPrice(price decimal.Decimal) bool {
	return price.IsPositive() && price.Equal(price.Round(PriceScale))
}

// BelongsToFarm reports whether the product is sold by the given farm.
// Store products created without a farm belong to none and cannot be ordered.
func (p *Product) BelongsToFarm(farmID uuid.UUID) bool {
	return p.FarmID != nil && *p.FarmID == farmID
}
