package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CropModel mirrors the 'crops' reference table maintained by the catalog admin process.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CropModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Category  string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CropModel) TableName() string {
	return "crops"
}

// PlantedCropModel mirrors the 'planted_crops' ledger table.
// The check constraint keeps the balance non-negative even if a caller bypasses the conditional update.
type PlantedCropModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FarmID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	CropID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	Crop                 *CropModel `gorm:"foreignKey:CropID"`
	PlantedDate          time.Time  `gorm:"not null"`
	EstimatedHarvestDate time.Time  `gorm:"not null"`
	ActualHarvestDate    *time.Time
	Quantity             int    `gorm:"not null;check:chk_planted_crops_quantity,quantity >= 0"`
	Available            bool   `gorm:"not null"`
	Status               string `gorm:"type:varchar(32);not null"`
	Notes                string `gorm:"type:text"`
	Version              int64  `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantedCropModel) TableName() string {
	return "planted_crops"
}

// ProductModel mirrors the 'products' table.
// PlantedCropID is a traceability column only; no foreign key ties the product to the ledger row.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CropName      string          `gorm:"type:varchar(128);not null"`
	Description   string          `gorm:"type:text"`
	Category      string          `gorm:"type:varchar(64);not null;index"`
	Quantity      int             `gorm:"not null;check:chk_products_quantity,quantity >= 0"`
	Unit          string          `gorm:"type:varchar(32);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available     bool            `gorm:"not null;index"`
	ImageURL      string          `gorm:"type:varchar(512)"`
	PlantedCropID *uuid.UUID      `gorm:"type:uuid;index"`
	FarmID        *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
