// Package usecase defines the application-specific business rules.
package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase exposes the read-only crop catalog.
type CatalogUsecase interface {
	// GetCrop retrieves a catalog crop by ID
	GetCrop(ctx context.Context, cropID uuid.UUID) (*entity.Crop, error)

	// ListCrops lists catalog crops, optionally restricted to a category
	ListCrops(ctx context.Context, category string) ([]*entity.Crop, error)
}
