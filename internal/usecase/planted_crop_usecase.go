package usecase

import (
	"context"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// PlantInput represents the data needed to plant a crop on a farm
type PlantInput struct {
	FarmID               uuid.UUID `json:"farm_id" validate:"required"`
	CropID               uuid.UUID `json:"crop_id" validate:"required"`
	Quantity             int       `json:"quantity"`
	PlantedDate          time.Time `json:"planted_date" validate:"required"`
	EstimatedHarvestDate time.Time `json:"estimated_harvest_date" validate:"required"`
	Notes                string    `json:"notes" validate:"max=1000"`
}

// PlantedCropUsecase is the ledger of planted crop stock per farm
type PlantedCropUsecase interface {
	// Plant records a new planted crop on an approved farm
	Plant(ctx context.Context, actor *entity.Actor, input *PlantInput) (*entity.PlantedCrop, error)

	// AdjustQuantity applies a signed delta to the balance atomically
	AdjustQuantity(ctx context.Context, actor *entity.Actor, plantedCropID uuid.UUID, delta int) (*entity.PlantedCrop, error)

	// RecordHarvest sets the actual harvest date
	RecordHarvest(ctx context.Context, actor *entity.Actor, plantedCropID uuid.UUID, harvestedAt time.Time) (*entity.PlantedCrop, error)

	// Remove deletes a planted crop regardless of its remaining quantity
	Remove(ctx context.Context, actor *entity.Actor, plantedCropID uuid.UUID) error

	// Get retrieves a planted crop joined with its catalog crop
	Get(ctx context.Context, plantedCropID uuid.UUID) (*entity.PlantedCrop, error)

	// ListByFarm lists the planted crops of a farm
	ListByFarm(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) ([]*entity.PlantedCrop, error)
}
