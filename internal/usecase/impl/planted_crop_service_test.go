package impl

import (
	"context"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// plantedCropServiceFixtures holds all test dependencies for planted crop service tests.
type plantedCropServiceFixtures struct {
	service         usecase.PlantedCropUsecase
	farmRepo        *mockRepo.MockFarmRepository
	cropRepo        *mockRepo.MockCropRepository
	plantedCropRepo *mockRepo.MockPlantedCropRepository
}

func createTestPlantedCropService(t *testing.T, cfg *config.Config) plantedCropServiceFixtures {
	farmRepo := mockRepo.NewMockFarmRepository(t)
	cropRepo := mockRepo.NewMockCropRepository(t)
	plantedCropRepo := mockRepo.NewMockPlantedCropRepository(t)

	service := NewPlantedCropService(PlantedCropServiceParams{
		FarmRepo:        farmRepo,
		CropRepo:        cropRepo,
		PlantedCropRepo: plantedCropRepo,
		Config:          cfg,
		Logger:          newDiscardLogger(),
	})

	return plantedCropServiceFixtures{
		service:         service,
		farmRepo:        farmRepo,
		cropRepo:        cropRepo,
		plantedCropRepo: plantedCropRepo,
	}
}

func newPlantedCrop(farm *entity.Farm, quantity int) *entity.PlantedCrop {
	return &entity.PlantedCrop{
		ID:       uuid.New(),
		FarmID:   farm.ID,
		CropID:   uuid.New(),
		CropName: "番茄",
		Quantity: quantity,
		Status:   constants.PlantedCropStatusPlanted,
	}
}

func TestPlantedCropService_Plant(t *testing.T) {
	fx := createTestPlantedCropService(t, newTestConfig())

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	crop := &entity.Crop{ID: uuid.New(), Name: "番茄", Category: "果菜類"}
	planted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	input := &usecase.PlantInput{
		FarmID:               farm.ID,
		CropID:               crop.ID,
		Quantity:             100,
		PlantedDate:          planted,
		EstimatedHarvestDate: planted.AddDate(0, 3, 0),
	}

	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
	fx.cropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil)
	fx.plantedCropRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PlantedCrop")).
		Return(nil)

	got, err := fx.service.Plant(ctx, farmer, input)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Quantity)
	assert.Equal(t, "番茄", got.CropName)
	assert.Equal(t, "果菜類", got.CropCategory)
	assert.Equal(t, constants.PlantedCropStatusPlanted, got.Status)
	assert.True(t, got.Available)
	assert.Nil(t, got.ActualHarvestDate)
}

func TestPlantedCropService_Plant_Errors(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("non-positive quantity", func(t *testing.T) {
		fx := createTestPlantedCropService(t, newTestConfig())

		_, err := fx.service.Plant(ctx, farmerActor(), &usecase.PlantInput{Quantity: 0, PlantedDate: now, EstimatedHarvestDate: now})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})

	t.Run("harvest before planting", func(t *testing.T) {
		fx := createTestPlantedCropService(t, newTestConfig())

		_, err := fx.service.Plant(ctx, farmerActor(), &usecase.PlantInput{Quantity: 1, PlantedDate: now, EstimatedHarvestDate: now.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("farm not approved", func(t *testing.T) {
		fx := createTestPlantedCropService(t, newTestConfig())

		farmer := farmerActor()
		farm := approvedFarm(farmer)
		farm.Status = entity.FarmStatusPending
		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

		_, err := fx.service.Plant(ctx, farmer, &usecase.PlantInput{FarmID: farm.ID, Quantity: 1, PlantedDate: now, EstimatedHarvestDate: now})
		assert.ErrorIs(t, err, domainerrors.ErrFarmNotApproved)
	})

	t.Run("not the owner", func(t *testing.T) {
		fx := createTestPlantedCropService(t, newTestConfig())

		farm := approvedFarm(farmerActor())
		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

		_, err := fx.service.Plant(ctx, farmerActor(), &usecase.PlantInput{FarmID: farm.ID, Quantity: 1, PlantedDate: now, EstimatedHarvestDate: now})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("unknown crop", func(t *testing.T) {
		fx := createTestPlantedCropService(t, newTestConfig())

		farmer := farmerActor()
		farm := approvedFarm(farmer)
		cropID := uuid.New()
		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
		fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(nil, repository.ErrCropNotFound)

		_, err := fx.service.Plant(ctx, farmer, &usecase.PlantInput{FarmID: farm.ID, CropID: cropID, Quantity: 1, PlantedDate: now, EstimatedHarvestDate: now})
		assert.ErrorIs(t, err, domainerrors.ErrCropNotFound)
	})
}

func TestPlantedCropService_AdjustQuantity(t *testing.T) {
	fx := createTestPlantedCropService(t, newTestConfig())

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	crop := newPlantedCrop(farm, 10)
	adjusted := *crop
	adjusted.Quantity = 7

	fx.plantedCropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil).Once()
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
	fx.plantedCropRepo.EXPECT().AdjustQuantity(ctx, crop.ID, -3).Return(nil)
	fx.plantedCropRepo.EXPECT().FindByID(ctx, crop.ID).Return(&adjusted, nil).Once()

	got, err := fx.service.AdjustQuantity(ctx, farmer, crop.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}

func TestPlantedCropService_AdjustQuantity_Insufficient(t *testing.T) {
	fx := createTestPlantedCropService(t, newTestConfig())

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	crop := newPlantedCrop(farm, 2)

	fx.plantedCropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil)
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
	fx.plantedCropRepo.EXPECT().AdjustQuantity(ctx, crop.ID, -5).Return(repository.ErrInsufficientQuantity)

	_, err := fx.service.AdjustQuantity(ctx, farmer, crop.ID, -5)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientQuantity)
}

func TestPlantedCropService_AdjustQuantity_ZeroDelta(t *testing.T) {
	fx := createTestPlantedCropService(t, newTestConfig())

	_, err := fx.service.AdjustQuantity(context.Background(), farmerActor(), uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestPlantedCropService_RecordHarvest(t *testing.T) {
	fx := createTestPlantedCropService(t, newTestConfig())

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	crop := newPlantedCrop(farm, 10)
	harvestedAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	harvested := *crop
	harvested.ActualHarvestDate = &harvestedAt
	harvested.Status = constants.PlantedCropStatusHarvested

	fx.plantedCropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil).Once()
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
	fx.plantedCropRepo.EXPECT().
		SetHarvest(ctx, crop.ID, harvestedAt, constants.PlantedCropStatusHarvested).
		Return(nil)
	fx.plantedCropRepo.EXPECT().FindByID(ctx, crop.ID).Return(&harvested, nil).Once()

	got, err := fx.service.RecordHarvest(ctx, farmer, crop.ID, harvestedAt)
	require.NoError(t, err)
	assert.Equal(t, constants.PlantedCropStatusHarvested, got.Status)
}

func TestPlantedCropService_RecordHarvest_SameDayIsNoop(t *testing.T) {
	fx := createTestPlantedCropService(t, newTestConfig())

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	recorded := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	crop := newPlantedCrop(farm, 10)
	crop.ActualHarvestDate = &recorded

	fx.plantedCropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil)
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

	got, err := fx.service.RecordHarvest(ctx, farmer, crop.ID, recorded.Add(6*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, crop, got)
}

func TestPlantedCropService_RecordHarvest_Strict(t *testing.T) {
	cfg := newTestConfig()
	cfg.Ledger.StrictHarvest = true
	fx := createTestPlantedCropService(t, cfg)

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	recorded := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	crop := newPlantedCrop(farm, 10)
	crop.ActualHarvestDate = &recorded

	fx.plantedCropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil)
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

	_, err := fx.service.RecordHarvest(ctx, farmer, crop.ID, recorded.AddDate(0, 0, 3))
	assert.ErrorIs(t, err, domainerrors.ErrHarvestAlreadyRecorded)
}

func TestPlantedCropService_Remove_WithStock(t *testing.T) {
	fx := createTestPlantedCropService(t, newTestConfig())

	ctx := context.Background()
	farmer := farmerActor()
	farm := approvedFarm(farmer)
	farm.Status = entity.FarmStatusPending
	crop := newPlantedCrop(farm, 50)

	fx.plantedCropRepo.EXPECT().FindByID(ctx, crop.ID).Return(crop, nil)
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
	fx.plantedCropRepo.EXPECT().Delete(ctx, crop.ID).Return(nil)

	require.NoError(t, fx.service.Remove(ctx, farmer, crop.ID))
}

func TestPlantedCropService_Get_NotFound(t *testing.T) {
	fx := createTestPlantedCropService(t, newTestConfig())

	ctx := context.Background()
	id := uuid.New()

	fx.plantedCropRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPlantedCropNotFound)

	_, err := fx.service.Get(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrPlantedCropNotFound)
}

func TestPlantedCropService_ListByFarm(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees a pending farm", func(t *testing.T) {
		fx := createTestPlantedCropService(t, newTestConfig())

		farmer := farmerActor()
		farm := approvedFarm(farmer)
		farm.Status = entity.FarmStatusPending
		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
		fx.plantedCropRepo.EXPECT().FindByFarm(ctx, farm.ID).Return([]*entity.PlantedCrop{newPlantedCrop(farm, 1)}, nil)

		got, err := fx.service.ListByFarm(ctx, farmer, farm.ID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("anonymous caller cannot see a pending farm", func(t *testing.T) {
		fx := createTestPlantedCropService(t, newTestConfig())

		farm := approvedFarm(farmerActor())
		farm.Status = entity.FarmStatusPending
		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

		_, err := fx.service.ListByFarm(ctx, nil, farm.ID)
		assert.ErrorIs(t, err, domainerrors.ErrFarmNotApproved)
	})

	t.Run("anyone sees an approved farm", func(t *testing.T) {
		fx := createTestPlantedCropService(t, newTestConfig())

		farm := approvedFarm(farmerActor())
		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
		fx.plantedCropRepo.EXPECT().FindByFarm(ctx, farm.ID).Return(nil, nil)

		_, err := fx.service.ListByFarm(ctx, consumerActor(), farm.ID)
		require.NoError(t, err)
	})
}
