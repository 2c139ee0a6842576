package postgres

import (
	"context"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// plantedCropRepository implements the repository.PlantedCropRepository interface.
type plantedCropRepository struct {
	db *gorm.DB
}

// NewPlantedCropRepository is the constructor for plantedCropRepository.
func NewPlantedCropRepository(db *gorm.DB) repository.PlantedCropRepository {
	return &plantedCropRepository{
		db: db,
	}
}

// Create persists a new planted crop.
func (repo *plantedCropRepository) Create(ctx context.Context, crop *entity.PlantedCrop) error {
	cropM := fromPlantedCropDomain(crop)

	if err := repo.db.WithContext(ctx).Omit("Crop").Create(cropM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required planted crop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create planted crop")
	}

	crop.CreatedAt = cropM.CreatedAt
	crop.UpdatedAt = cropM.UpdatedAt

	return nil
}

// FindByID retrieves a planted crop, joined with its catalog crop.
func (repo *plantedCropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PlantedCrop, error) {
	var cropM model.PlantedCropModel

	if err := repo.db.WithContext(ctx).
		Preload("Crop").
		Where("id = ?", id).
		First(&cropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantedCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find planted crop by ID")
	}

	return toPlantedCropDomain(&cropM), nil
}

// FindByFarm retrieves all planted crops of a farm, joined with their catalog crops.
func (repo *plantedCropRepository) FindByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.PlantedCrop, error) {
	var cropModels []*model.PlantedCropModel

	if err := repo.db.WithContext(ctx).
		Preload("Crop").
		Where("farm_id = ?", farmID).
		Order("planted_date DESC").
		Find(&cropModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find planted crops by farm")
	}

	crops := make([]*entity.PlantedCrop, 0, len(cropModels))
	for _, cropM := range cropModels {
		crops = append(crops, toPlantedCropDomain(cropM))
	}

	return crops, nil
}

// AdjustQuantity applies delta as one conditional UPDATE. The WHERE clause is the
// compare-and-set: the row only changes when the resulting balance stays non-negative.
func (repo *plantedCropRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantedCropModel{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientQuantity
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust planted crop quantity")
	}

	if result.RowsAffected == 0 {
		return repo.missOrInsufficient(ctx, id)
	}

	return nil
}

// SetHarvest records the actual harvest date and status.
func (repo *plantedCropRepository) SetHarvest(ctx context.Context, id uuid.UUID, harvestedAt time.Time, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantedCropModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"actual_harvest_date": harvestedAt,
			"status":              status,
			"updated_at":          time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record harvest")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlantedCropNotFound
	}

	return nil
}

// Delete removes a planted crop permanently.
func (repo *plantedCropRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlantedCropModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete planted crop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlantedCropNotFound
	}

	return nil
}

// DeleteByFarm removes every planted crop of a farm.
func (repo *plantedCropRepository) DeleteByFarm(ctx context.Context, farmID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Delete(&model.PlantedCropModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete planted crops by farm")
	}

	return nil
}

func (repo *plantedCropRepository) missOrInsufficient(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PlantedCropModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check planted crop existence")
	}
	if count == 0 {
		return repository.ErrPlantedCropNotFound
	}

	return repository.ErrInsufficientQuantity
}

// --- Mapper Functions ---

// toPlantedCropDomain converts a GORM PlantedCropModel to a domain PlantedCrop entity.
func toPlantedCropDomain(data *model.PlantedCropModel) *entity.PlantedCrop {
	if data == nil {
		return nil
	}

	crop := &entity.PlantedCrop{
		ID:                   data.ID,
		FarmID:               data.FarmID,
		CropID:               data.CropID,
		PlantedDate:          data.PlantedDate,
		EstimatedHarvestDate: data.EstimatedHarvestDate,
		ActualHarvestDate:    data.ActualHarvestDate,
		Quantity:             data.Quantity,
		Available:            data.Available,
		Status:               data.Status,
		Notes:                data.Notes,
		Version:              data.Version,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
	if data.Crop != nil {
		crop.CropName = data.Crop.Name
		crop.CropCategory = data.Crop.Category
	}

	return crop
}

// fromPlantedCropDomain converts a domain PlantedCrop entity to a GORM PlantedCropModel.
func fromPlantedCropDomain(data *entity.PlantedCrop) *model.PlantedCropModel {
	if data == nil {
		return nil
	}

	return &model.PlantedCropModel{
		ID:                   data.ID,
		FarmID:               data.FarmID,
		CropID:               data.CropID,
		PlantedDate:          data.PlantedDate,
		EstimatedHarvestDate: data.EstimatedHarvestDate,
		ActualHarvestDate:    data.ActualHarvestDate,
		Quantity:             data.Quantity,
		Available:            data.Available,
		Status:               data.Status,
		Notes:                data.Notes,
		Version:              data.Version,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
