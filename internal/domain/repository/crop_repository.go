// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCropNotFound is returned when a catalog crop does not exist.
var ErrCropNotFound = errors.New("crop not found")

// CropRepository is the read-only catalog lookup.
type CropRepository interface {
	// FindByID retrieves a single crop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error)

	// List returns every crop, optionally restricted to one category.
	List(ctx context.Context, category string) ([]*entity.Crop, error)
}
