package postgres

import (
	"context"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedCrop(t *testing.T, db *gorm.DB) *model.CropModel {
	t.Helper()

	crop := &model.CropModel{ID: uuid.New(), Name: "番茄-" + uuid.NewString()[:8], Category: "果菜類"}
	require.NoError(t, db.Create(crop).Error)

	return crop
}

func seedFarm(t *testing.T, db *gorm.DB, status entity.FarmStatus) *entity.Farm {
	t.Helper()

	farm := &entity.Farm{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "青山農場",
		Location: entity.GeoPoint{Latitude: 24.1, Longitude: 120.6},
		Status:   status,
	}
	require.NoError(t, NewFarmRepository(db).Create(context.Background(), farm))

	return farm
}

func seedPlantedCrop(t *testing.T, db *gorm.DB, farm *entity.Farm, quantity int) *entity.PlantedCrop {
	t.Helper()

	crop := seedCrop(t, db)
	planted := &entity.PlantedCrop{
		ID:                   uuid.New(),
		FarmID:               farm.ID,
		CropID:               crop.ID,
		PlantedDate:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EstimatedHarvestDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Quantity:             quantity,
		Available:            true,
		Status:               "planted",
	}
	require.NoError(t, NewPlantedCropRepository(db).Create(context.Background(), planted))

	return planted
}

func TestPlantedCropRepository_FindByID_JoinsCatalog(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	planted := seedPlantedCrop(t, db, seedFarm(t, db, entity.FarmStatusApproved), 10)

	got, err := NewPlantedCropRepository(db).FindByID(ctx, planted.ID)
	require.NoError(t, err)
	assert.Contains(t, got.CropName, "番茄")
	assert.Equal(t, "果菜類", got.CropCategory)
	assert.Equal(t, 10, got.Quantity)

	_, err = NewPlantedCropRepository(db).FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrPlantedCropNotFound)
}

func TestPlantedCropRepository_AdjustQuantity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPlantedCropRepository(db)
	planted := seedPlantedCrop(t, db, seedFarm(t, db, entity.FarmStatusApproved), 10)

	require.NoError(t, repo.AdjustQuantity(ctx, planted.ID, -4))

	err := repo.AdjustQuantity(ctx, planted.ID, -7)
	assert.ErrorIs(t, err, repository.ErrInsufficientQuantity)

	require.NoError(t, repo.AdjustQuantity(ctx, planted.ID, 1))

	got, err := repo.FindByID(ctx, planted.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, int64(2), got.Version)

	err = repo.AdjustQuantity(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, repository.ErrPlantedCropNotFound)
}

func TestPlantedCropRepository_SetHarvestAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPlantedCropRepository(db)
	farm := seedFarm(t, db, entity.FarmStatusApproved)
	planted := seedPlantedCrop(t, db, farm, 10)
	seedPlantedCrop(t, db, farm, 5)

	harvestedAt := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetHarvest(ctx, planted.ID, harvestedAt, "harvested"))

	got, err := repo.FindByID(ctx, planted.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ActualHarvestDate)
	assert.True(t, got.HasHarvestOn(harvestedAt))
	assert.Equal(t, "harvested", got.Status)

	require.NoError(t, repo.Delete(ctx, planted.ID))
	assert.ErrorIs(t, repo.Delete(ctx, planted.ID), repository.ErrPlantedCropNotFound)

	require.NoError(t, repo.DeleteByFarm(ctx, farm.ID))
	remaining, err := repo.FindByFarm(ctx, farm.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestTransactionManager_SendToStoreConservesQuantity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)
	farm := seedFarm(t, db, entity.FarmStatusApproved)
	planted := seedPlantedCrop(t, db, farm, 10)

	send := func(quantity int) (*entity.Product, error) {
		product := &entity.Product{
			ID:            uuid.New(),
			CropName:      "番茄",
			Category:      "果菜類",
			Quantity:      quantity,
			Unit:          "kg",
			Price:         decimal.NewFromInt(30),
			Available:     true,
			PlantedCropID: &planted.ID,
			FarmID:        &farm.ID,
		}

		return product, txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.ProductRepo().Create(ctx, product); err != nil {
				return err
			}

			return f.PlantedCropRepo().AdjustQuantity(ctx, planted.ID, -quantity)
		})
	}

	sent, err := send(4)
	require.NoError(t, err)

	// The product insert is rolled back with the failed decrement.
	rejected, err := send(7)
	assert.ErrorIs(t, err, repository.ErrInsufficientQuantity)
	_, err = NewProductRepository(db).FindByID(ctx, rejected.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	stored, err := NewProductRepository(db).FindByID(ctx, sent.ID)
	require.NoError(t, err)
	balance, err := NewPlantedCropRepository(db).FindByID(ctx, planted.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Quantity+balance.Quantity)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(30)))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	farm := seedFarm(t, db, entity.FarmStatusApproved)
	planted := seedPlantedCrop(t, db, farm, 10)
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.PlantedCropRepo().AdjustQuantity(ctx, planted.ID, -10))

		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := NewPlantedCropRepository(db).FindByID(ctx, planted.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
}

func TestFarmRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewFarmRepository(db)
	farm := seedFarm(t, db, entity.FarmStatusPending)

	require.NoError(t, repo.UpdateStatus(ctx, farm.ID, entity.FarmStatusPending, entity.FarmStatusApproved, nil))

	reason := "重複申請"
	err := repo.UpdateStatus(ctx, farm.ID, entity.FarmStatusPending, entity.FarmStatusRejected, &reason)
	assert.ErrorIs(t, err, repository.ErrFarmStatusChanged)

	err = repo.UpdateStatus(ctx, uuid.New(), entity.FarmStatusPending, entity.FarmStatusApproved, nil)
	assert.ErrorIs(t, err, repository.ErrFarmNotFound)

	got, err := repo.FindByID(ctx, farm.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FarmStatusApproved, got.Status)
	assert.Nil(t, got.RejectionReason)
}

func TestFarmRepository_AddRating(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewFarmRepository(db)
	farm := seedFarm(t, db, entity.FarmStatusApproved)

	require.NoError(t, repo.AddRating(ctx, farm.ID, 4))
	require.NoError(t, repo.AddRating(ctx, farm.ID, 5))

	got, err := repo.FindByID(ctx, farm.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.RatingCount)
	assert.InDelta(t, 4.5, got.Rating, 1e-9)

	assert.ErrorIs(t, repo.AddRating(ctx, uuid.New(), 3), repository.ErrFarmNotFound)
}

func TestFarmRepository_FindByStatusAndOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewFarmRepository(db)
	approved := seedFarm(t, db, entity.FarmStatusApproved)
	seedFarm(t, db, entity.FarmStatusPending)

	got, err := repo.FindByStatus(ctx, entity.FarmStatusApproved)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, approved.ID, got[0].ID)
	assert.InDelta(t, 24.1, got[0].Location.Latitude, 1e-9)

	all, err := repo.FindByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.FindByOwner(ctx, approved.OwnerID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestProductRepository_ListAndAdjust(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	farmID := uuid.New()

	products := []*entity.Product{
		{ID: uuid.New(), CropName: "番茄", Category: "果菜類", Quantity: 5, Unit: "kg", Price: decimal.NewFromInt(30), Available: true, FarmID: &farmID},
		{ID: uuid.New(), CropName: "茄子", Category: "果菜類", Quantity: 0, Unit: "kg", Price: decimal.NewFromInt(25), Available: true, FarmID: &farmID},
		{ID: uuid.New(), CropName: "米", Category: "穀物", Quantity: 9, Unit: "包", Price: decimal.NewFromInt(250), Available: true},
	}
	for _, p := range products {
		require.NoError(t, repo.Create(ctx, p))
	}

	byFarm, err := repo.List(ctx, repository.ProductFilter{FarmID: &farmID})
	require.NoError(t, err)
	assert.Len(t, byFarm, 2)

	inStock, err := repo.List(ctx, repository.ProductFilter{Category: "果菜類", AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, inStock, 1)
	assert.Equal(t, products[0].ID, inStock[0].ID)

	assert.ErrorIs(t, repo.AdjustQuantity(ctx, products[0].ID, -6), repository.ErrInsufficientQuantity)
	require.NoError(t, repo.AdjustQuantity(ctx, products[0].ID, -5))
	assert.ErrorIs(t, repo.AdjustQuantity(ctx, uuid.New(), -1), repository.ErrProductNotFound)

	got, err := repo.FindByID(ctx, products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestProductRepository_UpdateKeepsReservedQuantity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	farmID := uuid.New()

	product := &entity.Product{ID: uuid.New(), CropName: "番茄", Category: "果菜類", Quantity: 10, Unit: "kg", Price: decimal.NewFromInt(30), Available: true, FarmID: &farmID}
	require.NoError(t, repo.Create(ctx, product))

	// An order reserves stock between the editor's read and write.
	require.NoError(t, repo.AdjustQuantity(ctx, product.ID, -4))

	description := "當季新鮮"
	price := decimal.RequireFromString("32.50")
	require.NoError(t, repo.Update(ctx, product.ID, repository.ProductPatch{
		Description: &description,
		Price:       &price,
		UpdatedAt:   time.Now().UTC(),
	}))

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Quantity)
	assert.Equal(t, description, got.Description)
	assert.True(t, got.Price.Equal(price))
	assert.Equal(t, "kg", got.Unit)

	quantity := 2
	require.NoError(t, repo.Update(ctx, product.ID, repository.ProductPatch{Quantity: &quantity, UpdatedAt: time.Now().UTC()}))
	got, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)

	assert.ErrorIs(t, repo.Update(ctx, uuid.New(), repository.ProductPatch{Quantity: &quantity}), repository.ErrProductNotFound)
}

func newTestOrder(farmIDs ...uuid.UUID) *entity.Order {
	now := time.Now().UTC().Truncate(time.Second)
	order := &entity.Order{
		ID:          uuid.New(),
		ConsumerID:  uuid.New(),
		TotalAmount: decimal.RequireFromString("11.5"),
		CreatedAt:   now,
	}
	for _, farmID := range farmIDs {
		farmOrder := &entity.FarmOrder{
			ID:        uuid.New(),
			OrderID:   order.ID,
			FarmID:    farmID,
			Status:    entity.FarmOrderStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		farmOrder.Items = []entity.OrderItem{{
			ID:          uuid.New(),
			FarmOrderID: farmOrder.ID,
			ProductID:   uuid.New(),
			ProductName: "番茄",
			Quantity:    3,
			UnitPrice:   decimal.RequireFromString("2.5"),
		}}
		order.FarmOrders = append(order.FarmOrders, farmOrder)
	}

	return order
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	farmA, farmB := uuid.New(), uuid.New()
	order := newTestOrder(farmA, farmB)

	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ConsumerID, got.ConsumerID)
	assert.True(t, got.TotalAmount.Equal(order.TotalAmount))
	require.Len(t, got.FarmOrders, 2)
	for _, fo := range got.FarmOrders {
		require.Len(t, fo.Items, 1)
		assert.Equal(t, 3, fo.Items[0].Quantity)
		assert.True(t, fo.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.5")))
	}
	assert.Equal(t, entity.FarmOrderStatusPending, got.Status())

	byConsumer, err := repo.FindByConsumer(ctx, order.ConsumerID)
	require.NoError(t, err)
	assert.Len(t, byConsumer, 1)

	byFarm, err := repo.FindFarmOrdersByFarm(ctx, farmA)
	require.NoError(t, err)
	require.Len(t, byFarm, 1)
	assert.Equal(t, order.ID, byFarm[0].OrderID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	order := newTestOrder(uuid.New())

	require.NoError(t, repo.Create(ctx, order))

	again := newTestOrder(uuid.New())
	again.ID = order.ID
	assert.ErrorIs(t, repo.Create(ctx, again), repository.ErrDuplicateOrder)
}

func TestOrderRepository_UpdateFarmOrderStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	order := newTestOrder(uuid.New())
	farmOrderID := order.FarmOrders[0].ID
	require.NoError(t, repo.Create(ctx, order))

	deliveryTime := time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateFarmOrderStatus(ctx, farmOrderID, entity.FarmOrderStatusPending, entity.FarmOrderStatusReady, &deliveryTime))

	err := repo.UpdateFarmOrderStatus(ctx, farmOrderID, entity.FarmOrderStatusPending, entity.FarmOrderStatusCanceled, nil)
	assert.ErrorIs(t, err, repository.ErrFarmOrderStatusChanged)

	err = repo.UpdateFarmOrderStatus(ctx, uuid.New(), entity.FarmOrderStatusPending, entity.FarmOrderStatusReady, nil)
	assert.ErrorIs(t, err, repository.ErrFarmOrderNotFound)

	got, err := repo.FindFarmOrderByID(ctx, farmOrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.FarmOrderStatusReady, got.Status)
	require.NotNil(t, got.DeliveryTime)
	assert.True(t, got.DeliveryTime.Equal(deliveryTime))
}

func TestOrderRepository_SetDeliveryCode(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewOrderRepository(db)
	order := newTestOrder(uuid.New())
	require.NoError(t, repo.Create(ctx, order))

	expiresAt := time.Date(2024, 7, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetDeliveryCode(ctx, order.ID, "hashed", expiresAt))
	assert.ErrorIs(t, repo.SetDeliveryCode(ctx, uuid.New(), "hashed", expiresAt), repository.ErrOrderNotFound)

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed", got.DeliveryCodeHash)
	require.NotNil(t, got.DeliveryCodeExpiresAt)
	assert.True(t, got.DeliveryCodeExpiresAt.Equal(expiresAt))
}

func TestCropRepository_List(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedCrop(t, db)
	require.NoError(t, db.Create(&model.CropModel{ID: uuid.New(), Name: "米", Category: "穀物"}).Error)

	all, err := NewCropRepository(db).List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	grains, err := NewCropRepository(db).List(ctx, "穀物")
	require.NoError(t, err)
	require.Len(t, grains, 1)
	assert.Equal(t, "米", grains[0].Name)

	_, err = NewCropRepository(db).FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCropNotFound)
}
