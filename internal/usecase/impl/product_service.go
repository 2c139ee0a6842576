package impl

import (
	"context"
	"log/slog"
	"time"

	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductServiceParams holds the dependencies of the product catalog.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	FarmRepo    repository.FarmRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

type productService struct {
	txManager   repository.TransactionManager
	farmRepo    repository.FarmRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewProductService creates the product catalog.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		farmRepo:    params.FarmRepo,
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// CreateFromCrop moves stock from a planted crop into a new product.
// The product insert and the ledger decrement commit together or not at all.
func (s *productService) CreateFromCrop(ctx context.Context, actor *entity.Actor, input *usecase.SendToStoreInput) (*entity.Product, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	var (
		product *entity.Product
		farm    *entity.Farm
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		plantedCropRepo := repoFactory.PlantedCropRepo()

		// 1. Find the planted crop
		planted, err := plantedCropRepo.FindByID(ctx, input.PlantedCropID)
		if err != nil {
			return translateLedgerError(err)
		}

		farm, err = findFarm(ctx, repoFactory.FarmRepo(), planted.FarmID)
		if err != nil {
			return err
		}
		if err := authorizeFarm(actor, farm); err != nil {
			return err
		}
		if err := requireApprovedFarm(farm); err != nil {
			return err
		}

		// 2. Validate quantity against the observed balance
		if input.QuantityToSend <= 0 {
			return errors.Wrapf(domainerrors.ErrInvalidQuantity, "quantity %d", input.QuantityToSend)
		}
		if input.QuantityToSend > planted.Quantity {
			return errors.Wrapf(domainerrors.ErrInsufficientQuantity, "requested %d, available %d", input.QuantityToSend, planted.Quantity)
		}

		// 3. Validate price
		if !entity.IsValidPrice(input.PricePerUnit) {
			return errors.Wrapf(domainerrors.ErrInvalidPrice, "price %s", input.PricePerUnit)
		}

		// 4. Create the product
		now := time.Now().UTC()
		plantedCropID := planted.ID
		farmID := planted.FarmID
		product = &entity.Product{
			ID:            uuid.New(),
			CropName:      planted.CropName,
			Description:   input.Description,
			Category:      planted.CropCategory,
			Quantity:      input.QuantityToSend,
			Unit:          input.Unit,
			Price:         input.PricePerUnit,
			Available:     true,
			PlantedCropID: &plantedCropID,
			FarmID:        &farmID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		// 5. Draw the balance down; a concurrent transfer may have won in between
		if err := plantedCropRepo.AdjustQuantity(ctx, planted.ID, -input.QuantityToSend); err != nil {
			return translateLedgerError(err)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to send crop to store")
	}

	s.logger.InfoContext(ctx, "Crop sent to store",
		slog.String("productID", product.ID.String()),
		slog.String("plantedCropID", input.PlantedCropID.String()),
		slog.Int("quantity", product.Quantity),
	)

	publishEvent(ctx, s.publisher, s.logger, entity.NewDomainEvent(
		constants.EventProductListed,
		product.ID,
		farm.OwnerID,
		"商品已上架",
		product.CropName+" 已上架至商店",
		map[string]string{"product_id": product.ID.String(), "farm_id": farm.ID.String()},
	))

	return product, nil
}

// Create adds a product directly. Only admins may list products with no planted crop behind them.
func (s *productService) Create(ctx context.Context, actor *entity.Actor, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if input.Quantity < 0 {
		return nil, errors.Wrapf(domainerrors.ErrInvalidQuantity, "quantity %d", input.Quantity)
	}
	if !entity.IsValidPrice(input.Price) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPrice, "price %s", input.Price)
	}
	if input.FarmID != nil {
		farm, err := findFarm(ctx, s.farmRepo, *input.FarmID)
		if err != nil {
			return nil, err
		}
		if err := requireApprovedFarm(farm); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New(),
		CropName:    input.CropName,
		Description: input.Description,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Price:       input.Price,
		Available:   true,
		ImageURL:    input.ImageURL,
		FarmID:      input.FarmID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// Update patches a product. It never touches the originating planted crop, and only the
// patched columns are written so concurrent reservations are kept.
func (s *productService) Update(ctx context.Context, actor *entity.Actor, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if _, err := s.loadForMutation(ctx, actor, productID); err != nil {
		return nil, err
	}

	if input.Price != nil && !entity.IsValidPrice(*input.Price) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPrice, "price %s", input.Price)
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, errors.Wrapf(domainerrors.ErrInvalidQuantity, "quantity %d", *input.Quantity)
	}

	patch := repository.ProductPatch{
		Price:       input.Price,
		Quantity:    input.Quantity,
		Available:   input.Available,
		Description: input.Description,
		Unit:        input.Unit,
		ImageURL:    input.ImageURL,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.productRepo.Update(ctx, productID, patch); err != nil {
		return nil, translateProductError(err)
	}

	return s.Get(ctx, productID)
}

// Delete removes a product. No quantity returns to the planted crop.
func (s *productService) Delete(ctx context.Context, actor *entity.Actor, productID uuid.UUID) error {
	product, err := s.loadForMutation(ctx, actor, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		return translateProductError(err)
	}

	return nil
}

// Get retrieves a product.
func (s *productService) Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translateProductError(err)
	}

	return product, nil
}

// List lists products matching the filter.
func (s *productService) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// loadForMutation loads a product and checks the caller may change it:
// admins may change any product, farmers only products sent from their own farms.
func (s *productService) loadForMutation(ctx context.Context, actor *entity.Actor, productID uuid.UUID) (*entity.Product, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	product, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return product, nil
	}
	if product.FarmID == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "store product is managed by admins")
	}

	farm, err := findFarm(ctx, s.farmRepo, *product.FarmID)
	if err != nil {
		return nil, err
	}
	if err := authorizeFarm(actor, farm); err != nil {
		return nil, err
	}

	return product, nil
}

// translateProductError maps product repository errors to domain errors.
func translateProductError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
	case errors.Is(err, repository.ErrInsufficientQuantity):
		return errors.Wrap(domainerrors.ErrInsufficientQuantity, "product quantity too low")
	default:
		return errors.Wrap(err, "product persistence failure")
	}
}
