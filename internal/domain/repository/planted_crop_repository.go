package repository

import (
	"context"
	"errors"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for planted crop persistence.
var (
	// ErrPlantedCropNotFound is returned when a planted crop is not found.
	ErrPlantedCropNotFound = errors.New("planted crop not found")
	// ErrInsufficientQuantity is returned when a conditional decrement would drive a balance negative.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

// PlantedCropRepository defines the interface for the planted crop ledger.
// Reads always join the catalog crop name and category.
type PlantedCropRepository interface {
	// Create persists a new planted crop.
	Create(ctx context.Context, crop *entity.PlantedCrop) error

	// FindByID retrieves a planted crop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PlantedCrop, error)

	// FindByFarm retrieves all planted crops of a farm.
	FindByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.PlantedCrop, error)

	// AdjustQuantity applies delta as a single conditional update that only succeeds
	// when quantity + delta >= 0. It returns ErrInsufficientQuantity and changes nothing otherwise.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error

	// SetHarvest records the actual harvest date and status.
	SetHarvest(ctx context.Context, id uuid.UUID, harvestedAt time.Time, status string) error

	// Delete removes a planted crop permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByFarm removes every planted crop of a farm.
	DeleteByFarm(ctx context.Context, farmID uuid.UUID) error
}
