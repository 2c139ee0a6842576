package postgres

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cropRepository implements the read-only repository.CropRepository.
type cropRepository struct {
	db *gorm.DB
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository(db *gorm.DB) repository.CropRepository {
	return &cropRepository{
		db: db,
	}
}

// FindByID retrieves a single crop by its unique ID.
func (repo *cropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error) {
	var cropM model.CropModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop by ID")
	}

	return toCropDomain(&cropM), nil
}

// List returns every crop, optionally restricted to one category.
func (repo *cropRepository) List(ctx context.Context, category string) ([]*entity.Crop, error) {
	var cropModels []*model.CropModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&cropModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	crops := make([]*entity.Crop, 0, len(cropModels))
	for _, cropM := range cropModels {
		crops = append(crops, toCropDomain(cropM))
	}

	return crops, nil
}

// toCropDomain converts a GORM CropModel to a domain Crop entity.
func toCropDomain(data *model.CropModel) *entity.Crop {
	if data == nil {
		return nil
	}

	return &entity.Crop{
		ID:       data.ID,
		Name:     data.Name,
		Category: data.Category,
	}
}
