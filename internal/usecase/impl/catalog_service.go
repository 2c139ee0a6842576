package impl

import (
	"context"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catalogService struct {
	cropRepo repository.CropRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(cropRepo repository.CropRepository) usecase.CatalogUsecase {
	return &catalogService{
		cropRepo: cropRepo,
	}
}

// GetCrop retrieves a catalog crop by ID
func (s *catalogService) GetCrop(ctx context.Context, cropID uuid.UUID) (*entity.Crop, error) {
	crop, err := s.cropRepo.FindByID(ctx, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCropNotFound, "crop not found")
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	return crop, nil
}

// ListCrops lists catalog crops, optionally restricted to a category
func (s *catalogService) ListCrops(ctx context.Context, category string) ([]*entity.Crop, error) {
	crops, err := s.cropRepo.List(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	return crops, nil
}
