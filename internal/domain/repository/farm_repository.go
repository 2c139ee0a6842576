package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for farm persistence.
var (
	// ErrFarmNotFound is returned when a farm is not found.
	ErrFarmNotFound = errors.New("farm not found")
	// ErrFarmStatusChanged is returned when a conditional status update lost the race.
	ErrFarmStatusChanged = errors.New("farm status changed concurrently")
)

// FarmRepository defines the interface for farm persistence.
type FarmRepository interface {
	// Create persists a new farm.
	Create(ctx context.Context, farm *entity.Farm) error

	// FindByID retrieves a farm by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error)

	// FindByOwner retrieves all farms owned by a farmer.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error)

	// FindByStatus retrieves all farms in the given status; an empty status returns every farm.
	FindByStatus(ctx context.Context, status entity.FarmStatus) ([]*entity.Farm, error)

	// UpdateStatus moves a farm from one status to another only if it is still in from.
	// It returns ErrFarmStatusChanged when the farm exists but is no longer in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.FarmStatus, rejectionReason *string) error

	// AddRating folds a score into the running average in a single update.
	AddRating(ctx context.Context, id uuid.UUID, score int) error

	// Delete removes a farm permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
