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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// farmServiceFixtures holds all test dependencies for farm service tests.
type farmServiceFixtures struct {
	service   usecase.FarmUsecase
	txManager *mockRepo.MockTransactionManager
	farmRepo  *mockRepo.MockFarmRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestFarmService(t *testing.T) farmServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	farmRepo := mockRepo.NewMockFarmRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewFarmService(FarmServiceParams{
		TxManager: txManager,
		FarmRepo:  farmRepo,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return farmServiceFixtures{
		service:   service,
		txManager: txManager,
		farmRepo:  farmRepo,
		publisher: publisher,
	}
}

func pendingFarm(owner *entity.Actor) *entity.Farm {
	farm := approvedFarm(owner)
	farm.Status = entity.FarmStatusPending

	return farm
}

func TestFarmService_Register(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farmer := farmerActor()
	input := &usecase.RegisterFarmInput{
		Name:      "  青山農場 ",
		Latitude:  24.1,
		Longitude: 120.6,
		AreaSize:  1.5,
		SoilType:  "壤土",
	}

	fx.farmRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Farm")).
		Return(nil)

	farm, err := fx.service.Register(ctx, farmer, input)
	require.NoError(t, err)
	assert.Equal(t, "青山農場", farm.Name)
	assert.Equal(t, farmer.UserID, farm.OwnerID)
	assert.Equal(t, entity.FarmStatusPending, farm.Status)
	assert.Equal(t, 24.1, farm.Location.Latitude)
}

func TestFarmService_Register_RequiresFarmer(t *testing.T) {
	fx := createTestFarmService(t)

	_, err := fx.service.Register(context.Background(), consumerActor(), &usecase.RegisterFarmInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = fx.service.Register(context.Background(), nil, &usecase.RegisterFarmInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestFarmService_Register_EmptyName(t *testing.T) {
	fx := createTestFarmService(t)

	_, err := fx.service.Register(context.Background(), farmerActor(), &usecase.RegisterFarmInput{Name: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFarmService_Approve(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farm := pendingFarm(farmerActor())
	approved := *farm
	approved.Status = entity.FarmStatusApproved

	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil).Once()
	fx.farmRepo.EXPECT().
		UpdateStatus(ctx, farm.ID, entity.FarmStatusPending, entity.FarmStatusApproved, (*string)(nil)).
		Return(nil)
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(&approved, nil).Once()
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *entity.DomainEvent) bool {
			return e.Type == constants.EventFarmApproved && e.RecipientID == farm.OwnerID
		})).
		Return(nil)

	got, err := fx.service.Approve(ctx, adminActor(), farm.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FarmStatusApproved, got.Status)
}

func TestFarmService_Approve_AlreadyDecided(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farm := approvedFarm(farmerActor())

	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

	_, err := fx.service.Approve(ctx, adminActor(), farm.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestFarmService_Approve_LostRace(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farm := pendingFarm(farmerActor())

	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
	fx.farmRepo.EXPECT().
		UpdateStatus(ctx, farm.ID, entity.FarmStatusPending, entity.FarmStatusApproved, (*string)(nil)).
		Return(repository.ErrFarmStatusChanged)

	_, err := fx.service.Approve(ctx, adminActor(), farm.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestFarmService_Approve_RequiresAdmin(t *testing.T) {
	fx := createTestFarmService(t)

	_, err := fx.service.Approve(context.Background(), farmerActor(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestFarmService_Approve_NotFound(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farmID := uuid.New()

	fx.farmRepo.EXPECT().FindByID(ctx, farmID).Return(nil, repository.ErrFarmNotFound)

	_, err := fx.service.Approve(ctx, adminActor(), farmID)
	assert.ErrorIs(t, err, domainerrors.ErrFarmNotFound)
}

func TestFarmService_Reject(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farm := pendingFarm(farmerActor())
	reason := "資料不完整"
	rejected := *farm
	rejected.Status = entity.FarmStatusRejected
	rejected.RejectionReason = &reason

	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil).Once()
	fx.farmRepo.EXPECT().
		UpdateStatus(ctx, farm.ID, entity.FarmStatusPending, entity.FarmStatusRejected, &reason).
		Return(nil)
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(&rejected, nil).Once()
	// A failed publish never fails the transition.
	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*entity.DomainEvent")).
		Return(errors.New("broker down"))

	got, err := fx.service.Reject(ctx, adminActor(), farm.ID, " "+reason+" ")
	require.NoError(t, err)
	assert.Equal(t, entity.FarmStatusRejected, got.Status)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, reason, *got.RejectionReason)
}

func TestFarmService_Reject_RequiresReason(t *testing.T) {
	fx := createTestFarmService(t)

	_, err := fx.service.Reject(context.Background(), adminActor(), uuid.New(), "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFarmService_Delete(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farm := approvedFarm(farmerActor())

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txFarmRepo := mockRepo.NewMockFarmRepository(t)
		txPlantedRepo := mockRepo.NewMockPlantedCropRepository(t)
		factory.EXPECT().FarmRepo().Return(txFarmRepo)
		factory.EXPECT().PlantedCropRepo().Return(txPlantedRepo)

		txFarmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)
		txPlantedRepo.EXPECT().DeleteByFarm(ctx, farm.ID).Return(nil)
		txFarmRepo.EXPECT().Delete(ctx, farm.ID).Return(nil)
	})

	require.NoError(t, fx.service.Delete(ctx, adminActor(), farm.ID))
}

func TestFarmService_Delete_NotFound(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farmID := uuid.New()

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txFarmRepo := mockRepo.NewMockFarmRepository(t)
		factory.EXPECT().FarmRepo().Return(txFarmRepo)
		txFarmRepo.EXPECT().FindByID(ctx, farmID).Return(nil, repository.ErrFarmNotFound)
	})

	err := fx.service.Delete(ctx, adminActor(), farmID)
	assert.ErrorIs(t, err, domainerrors.ErrFarmNotFound)
}

func TestFarmService_Rate(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farm := approvedFarm(farmerActor())
	rated := *farm
	rated.Rating = 4
	rated.RatingCount = 1

	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil).Once()
	fx.farmRepo.EXPECT().AddRating(ctx, farm.ID, 4).Return(nil)
	fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(&rated, nil).Once()

	got, err := fx.service.Rate(ctx, consumerActor(), farm.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RatingCount)
}

func TestFarmService_Rate_Errors(t *testing.T) {
	t.Run("score out of range", func(t *testing.T) {
		fx := createTestFarmService(t)

		_, err := fx.service.Rate(context.Background(), consumerActor(), uuid.New(), 6)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("farm not approved", func(t *testing.T) {
		fx := createTestFarmService(t)

		ctx := context.Background()
		farm := pendingFarm(farmerActor())
		fx.farmRepo.EXPECT().FindByID(ctx, farm.ID).Return(farm, nil)

		_, err := fx.service.Rate(ctx, consumerActor(), farm.ID, 3)
		assert.ErrorIs(t, err, domainerrors.ErrFarmNotApproved)
	})

	t.Run("farmer cannot rate", func(t *testing.T) {
		fx := createTestFarmService(t)

		_, err := fx.service.Rate(context.Background(), farmerActor(), uuid.New(), 3)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestFarmService_ListByStatus(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farms := []*entity.Farm{pendingFarm(farmerActor())}

	fx.farmRepo.EXPECT().FindByStatus(ctx, entity.FarmStatusPending).Return(farms, nil)

	got, err := fx.service.ListByStatus(ctx, adminActor(), entity.FarmStatusPending)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = fx.service.ListByStatus(ctx, adminActor(), entity.FarmStatus("ARCHIVED"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFarmService_ListMine(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farmer := farmerActor()
	farms := []*entity.Farm{approvedFarm(farmer), pendingFarm(farmer)}

	fx.farmRepo.EXPECT().FindByOwner(ctx, farmer.UserID).Return(farms, nil)

	got, err := fx.service.ListMine(ctx, farmer)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFarmService_FindNearby(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	origin := entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}

	far := approvedFarm(farmerActor())
	far.Location = entity.GeoPoint{Latitude: 25.0330, Longitude: 121.6200} // about 5.5km east
	near := approvedFarm(farmerActor())
	near.Location = entity.GeoPoint{Latitude: 25.0420, Longitude: 121.5654} // about 1km north
	outside := approvedFarm(farmerActor())
	outside.Location = entity.GeoPoint{Latitude: 24.1477, Longitude: 120.6736}

	fx.farmRepo.EXPECT().
		FindByStatus(ctx, entity.FarmStatusApproved).
		Return([]*entity.Farm{far, outside, near}, nil)

	got, err := fx.service.FindNearby(ctx, origin, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, near.ID, got[0].Farm.ID)
	assert.Equal(t, far.ID, got[1].Farm.ID)
	assert.Less(t, got[0].DistanceKm, got[1].DistanceKm)
}

func TestFarmService_FindNearby_RadiusTooLarge(t *testing.T) {
	fx := createTestFarmService(t)

	_, err := fx.service.FindNearby(context.Background(), entity.GeoPoint{}, 500)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
