package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Delivery: &config.DeliveryConfig{CodeLength: 6, CodeTTL: time.Hour},
		Ledger:   &config.LedgerConfig{StrictHarvest: false},
		Farm:     &config.FarmConfig{DefaultRadiusKm: 10, MaxRadiusKm: 100},
	}
}

// expectTransaction makes txManager run the callback once against a fresh factory prepared by setup.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func adminActor() *entity.Actor {
	return entity.NewActor(uuid.New(), []string{"admin"})
}

func farmerActor() *entity.Actor {
	return entity.NewActor(uuid.New(), []string{"farmer"})
}

func consumerActor() *entity.Actor {
	return entity.NewActor(uuid.New(), []string{"consumer"})
}

func approvedFarm(owner *entity.Actor) *entity.Farm {
	return &entity.Farm{
		ID:      uuid.New(),
		OwnerID: owner.UserID,
		Name:    "青山農場",
		Status:  entity.FarmStatusApproved,
	}
}
