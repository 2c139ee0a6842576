package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterFarmInput represents the data needed to register a farm
type RegisterFarmInput struct {
	Name      string  `json:"name" validate:"required,max=128"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	AreaSize  float64 `json:"area_size" validate:"gte=0"`
	SoilType  string  `json:"soil_type" validate:"max=64"`
}

// FarmUsecase is the farm registry with its approval workflow
type FarmUsecase interface {
	// Register creates a PENDING farm owned by the calling farmer
	Register(ctx context.Context, actor *entity.Actor, input *RegisterFarmInput) (*entity.Farm, error)

	// Approve moves a PENDING farm to APPROVED (admin only)
	Approve(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) (*entity.Farm, error)

	// Reject moves a PENDING farm to REJECTED with a reason (admin only)
	Reject(ctx context.Context, actor *entity.Actor, farmID uuid.UUID, reason string) (*entity.Farm, error)

	// Delete removes a farm and its planted crops (admin only)
	Delete(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) error

	// Rate folds a consumer score from 1 to 5 into the farm rating
	Rate(ctx context.Context, actor *entity.Actor, farmID uuid.UUID, score int) (*entity.Farm, error)

	// Get retrieves a farm
	Get(ctx context.Context, farmID uuid.UUID) (*entity.Farm, error)

	// ListByStatus lists farms in a status for admin inspection
	ListByStatus(ctx context.Context, actor *entity.Actor, status entity.FarmStatus) ([]*entity.Farm, error)

	// ListMine lists the farms owned by the calling farmer
	ListMine(ctx context.Context, actor *entity.Actor) ([]*entity.Farm, error)

	// FindNearby lists approved farms within radiusKm of a point, nearest first
	FindNearby(ctx context.Context, point entity.GeoPoint, radiusKm float64) ([]*entity.FarmWithDistance, error)
}
