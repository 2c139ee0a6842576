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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// List retrieves products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.FarmID != nil {
		query = query.Where("farm_id = ?", *filter.FarmID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.AvailableOnly {
		query = query.Where("available = ? AND quantity > 0", true)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update writes only the patched columns.
func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, patch repository.ProductPatch) error {
	columns := map[string]any{"updated_at": patch.UpdatedAt}
	if patch.Price != nil {
		columns["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		columns["quantity"] = *patch.Quantity
	}
	if patch.Available != nil {
		columns["available"] = *patch.Available
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.Unit != nil {
		columns["unit"] = *patch.Unit
	}
	if patch.ImageURL != nil {
		columns["image_url"] = *patch.ImageURL
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AdjustQuantity applies delta as one conditional UPDATE that never drives the quantity negative.
func (repo *productRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientQuantity
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust product quantity")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientQuantity
	}

	return nil
}

// Delete removes a product permanently.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		CropName:      data.CropName,
		Description:   data.Description,
		Category:      data.Category,
		Quantity:      data.Quantity,
		Unit:          data.Unit,
		Price:         data.Price,
		Available:     data.Available,
		ImageURL:      data.ImageURL,
		PlantedCropID: data.PlantedCropID,
		FarmID:        data.FarmID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		CropName:      data.CropName,
		Description:   data.Description,
		Category:      data.Category,
		Quantity:      data.Quantity,
		Unit:          data.Unit,
		Price:         data.Price,
		Available:     data.Available,
		ImageURL:      data.ImageURL,
		PlantedCropID: data.PlantedCropID,
		FarmID:        data.FarmID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
