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

// farmRepository implements the repository.FarmRepository interface.
type farmRepository struct {
	db *gorm.DB
}

// NewFarmRepository is the constructor for farmRepository.
func NewFarmRepository(db *gorm.DB) repository.FarmRepository {
	return &farmRepository{
		db: db,
	}
}

// Create persists a new farm.
func (repo *farmRepository) Create(ctx context.Context, farm *entity.Farm) error {
	farmM := fromFarmDomain(farm)

	if err := repo.db.WithContext(ctx).Create(farmM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("farm already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required farm information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create farm")
	}

	farm.CreatedAt = farmM.CreatedAt
	farm.UpdatedAt = farmM.UpdatedAt

	return nil
}

// FindByID retrieves a farm by its unique ID.
func (repo *farmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	var farmM model.FarmModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&farmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm by ID")
	}

	return toFarmDomain(&farmM), nil
}

// FindByOwner retrieves all farms owned by a farmer.
func (repo *farmRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

// FindByStatus retrieves all farms in the given status; an empty status returns every farm.
func (repo *farmRepository) FindByStatus(ctx context.Context, status entity.FarmStatus) ([]*entity.Farm, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	return repo.find(ctx, query)
}

func (repo *farmRepository) find(_ context.Context, query *gorm.DB) ([]*entity.Farm, error) {
	var farmModels []*model.FarmModel

	if err := query.Order("created_at DESC").Find(&farmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find farms")
	}

	farms := make([]*entity.Farm, 0, len(farmModels))
	for _, farmM := range farmModels {
		farms = append(farms, toFarmDomain(farmM))
	}

	return farms, nil
}

// UpdateStatus moves a farm from one status to another only if it is still in from.
func (repo *farmRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.FarmStatus, rejectionReason *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FarmModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":           string(to),
			"rejection_reason": rejectionReason,
			"updated_at":       time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update farm status")
	}

	if result.RowsAffected == 0 {
		return repo.missOrConflict(ctx, id, repository.ErrFarmStatusChanged)
	}

	return nil
}

// AddRating folds a score into the running average in a single update.
func (repo *farmRepository) AddRating(ctx context.Context, id uuid.UUID, score int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FarmModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":       gorm.Expr("(rating * rating_count + ?) / (rating_count + 1)", float64(score)),
			"rating_count": gorm.Expr("rating_count + 1"),
			"updated_at":   time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rate farm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	return nil
}

// Delete removes a farm permanently.
func (repo *farmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FarmModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete farm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	return nil
}

// missOrConflict tells a missing row apart from a row that failed the update condition.
func (repo *farmRepository) missOrConflict(ctx context.Context, id uuid.UUID, conflict error) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FarmModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check farm existence")
	}
	if count == 0 {
		return repository.ErrFarmNotFound
	}

	return conflict
}

// --- Mapper Functions ---

// toFarmDomain converts a GORM FarmModel to a domain Farm entity.
func toFarmDomain(data *model.FarmModel) *entity.Farm {
	if data == nil {
		return nil
	}

	return &entity.Farm{
		ID:      data.ID,
		OwnerID: data.OwnerID,
		Name:    data.Name,
		Location: entity.GeoPoint{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		AreaSize:        data.AreaSize,
		SoilType:        data.SoilType,
		Status:          entity.FarmStatus(data.Status),
		RejectionReason: data.RejectionReason,
		Rating:          data.Rating,
		RatingCount:     data.RatingCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromFarmDomain converts a domain Farm entity to a GORM FarmModel.
func fromFarmDomain(data *entity.Farm) *model.FarmModel {
	if data == nil {
		return nil
	}

	return &model.FarmModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Name:            data.Name,
		Latitude:        data.Location.Latitude,
		Longitude:       data.Location.Longitude,
		AreaSize:        data.AreaSize,
		SoilType:        data.SoilType,
		Status:          string(data.Status),
		RejectionReason: data.RejectionReason,
		Rating:          data.Rating,
		RatingCount:     data.RatingCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
