package impl

import (
	"context"
	"testing"

	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	farmRepo    *mockRepo.MockFarmRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	farmRepo := mockRepo.NewMockFarmRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		FarmRepo:    farmRepo,
		ProductRepo: productRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     service,
		txManager:   txManager,
		farmRepo:    farmRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

func TestProductService_CreateFromCrop(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	planted := newPlantedCrop(farm, 10)
	planted.CropCategory = "果菜類"
	input := &usecase.SendToStoreInput{
		PlantedCropID:  planted.ID,
		QuantityToSend: 4,
		Unit:           "kg",
		PricePerUnit:   decimal.RequireFromString("35.5"),
		Description:    "溫室番茄",
	}

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlantedRepo := mockRepo.NewMockPlantedCropRepository(t)
		txFarmRepo := mockRepo.NewMockFarmRepository(t)
		txProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().PlantedCropRepo().Return(txPlantedRepo)
		factory.EXPECT().FarmRepo().Return(txFarmRepo)
		factory.EXPECT().ProductRepo().Return(txProductRepo)

		txPlantedRepo.EXPECT().FindByID(ctx, planted.ID).Return(planted, nil)
		txFarmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
		txProductRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
				return p.Quantity == 4 && p.PlantedCropID != nil && *p.PlantedCropID == planted.ID
			})).
			Return(nil)
		txPlantedRepo.EXPECT().AdjustQuantity(ctx, planted.ID, -4).Return(nil)
	})
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *entity.DomainEvent) bool {
			return e.Type == constants.EventProductListed && e.RecipientID == farmer.UserID
		})).
		Return(nil)

	product, err := fx.service.CreateFromCrop(ctx, farmer, input)
	require.NoError(t, err)
	assert.Equal(t, "番茄", product.CropName)
	assert.Equal(t, "果菜類", product.Category)
	assert.Equal(t, 4, product.Quantity)
	assert.True(t, product.Price.Equal(input.PricePerUnit))
	require.NotNil(t, product.FarmID)
	assert.Equal(t, farm.ID, *product.FarmID)
	assert.True(t, product.Available)
}

func TestProductService_CreateFromCrop_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		quantity int
		price    string
		wantErr  error
	}{
		{"more than the balance", 11, "10", domainerrors.ErrInsufficientQuantity},
		{"zero quantity", 0, "10", domainerrors.ErrInvalidQuantity},
		{"zero price", 1, "0", domainerrors.ErrInvalidPrice},
		{"negative price", 1, "-3", domainerrors.ErrInvalidPrice},
		{"price finer than cents", 1, "0.001", domainerrors.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			farmer := farmerActor()
			farm := approvedFarm(farmer)
			planted := newPlantedCrop(farm, 10)

			expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				txPlantedRepo := mockRepo.NewMockPlantedCropRepository(t)
				txFarmRepo := mockRepo.NewMockFarmRepository(t)
				factory.EXPECT().PlantedCropRepo().Return(txPlantedRepo)
				factory.EXPECT().FarmRepo().Return(txFarmRepo)

				txPlantedRepo.EXPECT().FindByID(ctx, planted.ID).Return(planted, nil)
				txFarmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
			})

			_, err := fx.service.CreateFromCrop(ctx, farmer, &usecase.SendToStoreInput{
				PlantedCropID:  planted.ID,
				QuantityToSend: tt.quantity,
				Unit:           "kg",
				PricePerUnit:   decimal.RequireFromString(tt.price),
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_CreateFromCrop_ConcurrentDrawDown(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	planted := newPlantedCrop(farm, 5)

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlantedRepo := mockRepo.NewMockPlantedCropRepository(t)
		txFarmRepo := mockRepo.NewMockFarmRepository(t)
		txProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().PlantedCropRepo().Return(txPlantedRepo)
		factory.EXPECT().FarmRepo().Return(txFarmRepo)
		factory.EXPECT().ProductRepo().Return(txProductRepo)

		txPlantedRepo.EXPECT().FindByID(ctx, planted.ID).Return(planted, nil)
		txFarmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
		txProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
		// Another transfer drew the balance down after it was read.
		txPlantedRepo.EXPECT().AdjustQuantity(ctx, planted.ID, -5).Return(repository.ErrInsufficientQuantity)
	})

	_, err := fx.service.CreateFromCrop(ctx, farmer, &usecase.SendToStoreInput{
		PlantedCropID:  planted.ID,
		QuantityToSend: 5,
		Unit:           "kg",
		PricePerUnit:   decimal.NewFromInt(20),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientQuantity)
}

func TestProductService_CreateFromCrop_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	farm := approvedFarm(farmerActor())
	planted := newPlantedCrop(farm, 5)

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPlantedRepo := mockRepo.NewMockPlantedCropRepository(t)
		txFarmRepo := mockRepo.NewMockFarmRepository(t)
		factory.EXPECT().PlantedCropRepo().Return(txPlantedRepo)
		factory.EXPECT().FarmRepo().Return(txFarmRepo)

		txPlantedRepo.EXPECT().FindByID(ctx, planted.ID).Return(planted, nil)
		txFarmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
	})

	_, err := fx.service.CreateFromCrop(ctx, farmerActor(), &usecase.SendToStoreInput{
		PlantedCropID:  planted.ID,
		QuantityToSend: 1,
		PricePerUnit:   decimal.NewFromInt(20),
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestProductService_Create(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		CropName: "米",
		Category: "穀物",
		Quantity: 20,
		Unit:     "包",
		Price:    decimal.NewFromInt(250),
	}

	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.Create(ctx, adminActor(), input)
	require.NoError(t, err)
	assert.Nil(t, product.FarmID)
	assert.Nil(t, product.PlantedCropID)
	assert.Equal(t, 20, product.Quantity)

	_, err = fx.service.Create(ctx, farmerActor(), input)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	input.Price = decimal.RequireFromString("249.999")
	_, err = fx.service.Create(ctx, adminActor(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
}

func TestProductService_Create_BoundToFarm(t *testing.T) {
	ctx := context.Background()

	t.Run("approved farm", func(t *testing.T) {
		fx := createTestProductService(t)
		farm := approvedFarm(farmerActor())

		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
		fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := fx.service.Create(ctx, adminActor(), &usecase.CreateProductInput{
			CropName: "地瓜", Category: "根莖類", Quantity: 5, Unit: "kg", Price: decimal.NewFromInt(40), FarmID: &farm.ID,
		})
		require.NoError(t, err)
		assert.True(t, product.BelongsToFarm(farm.ID))
	})

	t.Run("pending farm", func(t *testing.T) {
		fx := createTestProductService(t)
		farm := approvedFarm(farmerActor())
		farm.Status = entity.FarmStatusPending

		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

		_, err := fx.service.Create(ctx, adminActor(), &usecase.CreateProductInput{
			CropName: "地瓜", Category: "根莖類", Quantity: 5, Unit: "kg", Price: decimal.NewFromInt(40), FarmID: &farm.ID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrFarmNotApproved)
	})
}

func TestProductService_Update(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	plantedID := uuid.New()
	product := &entity.Product{
		ID:            uuid.New(),
		CropName:      "番茄",
		Quantity:      10,
		Price:         decimal.NewFromInt(30),
		Available:     true,
		FarmID:        &farm.ID,
		PlantedCropID: &plantedID,
	}
	price := decimal.NewFromInt(45)
	available := false

	// An order reserved 4 units after the first read.
	stored := *product
	stored.Quantity = 6
	stored.Price = price
	stored.Available = available

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil).Once()
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
	fx.productRepo.EXPECT().Update(ctx, product.ID, mock.MatchedBy(func(patch repository.ProductPatch) bool {
		return patch.Quantity == nil && patch.Price.Equal(price) && *patch.Available == available && patch.Description == nil
	})).Return(nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(&stored, nil).Once()

	got, err := fx.service.Update(ctx, farmer, product.ID, &usecase.UpdateProductInput{
		Price:     &price,
		Available: &available,
	})
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(price))
	assert.False(t, got.Available)
	assert.Equal(t, 6, got.Quantity)
}

func TestProductService_Update_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("negative quantity", func(t *testing.T) {
		fx := createTestProductService(t)

		product := &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(1)}
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		quantity := -1
		_, err := fx.service.Update(ctx, adminActor(), product.ID, &usecase.UpdateProductInput{Quantity: &quantity})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})

	t.Run("price finer than cents", func(t *testing.T) {
		fx := createTestProductService(t)

		product := &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(1)}
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		price := decimal.RequireFromString("0.001")
		_, err := fx.service.Update(ctx, adminActor(), product.ID, &usecase.UpdateProductInput{Price: &price})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
	})

	t.Run("farmer cannot edit a store product", func(t *testing.T) {
		fx := createTestProductService(t)

		product := &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(1)}
		fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.Update(ctx, farmerActor(), product.ID, &usecase.UpdateProductInput{})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestProductService(t)

		productID := uuid.New()
		fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.Update(ctx, adminActor(), productID, &usecase.UpdateProductInput{})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	plantedID := uuid.New()
	farmID := uuid.New()
	product := &entity.Product{ID: uuid.New(), PlantedCropID: &plantedID, FarmID: &farmID}

	// Deleting never returns stock to the planted crop.
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, adminActor(), product.ID))
}

func TestProductService_List(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	filter := repository.ProductFilter{Category: "果菜類", AvailableOnly: true}

	fx.productRepo.EXPECT().List(ctx, filter).Return([]*entity.Product{{ID: uuid.New()}}, nil)

	got, err := fx.service.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
