package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"harvest/config"
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

const (
	minRatingScore = 1
	maxRatingScore = 5
)

// FarmServiceParams holds the dependencies of the farm registry.
type FarmServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	FarmRepo  repository.FarmRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

type farmService struct {
	txManager repository.TransactionManager
	farmRepo  repository.FarmRepository
	publisher service.EventPublisher
	search    config.FarmConfig
	logger    *slog.Logger
}

// NewFarmService creates the farm registry.
func NewFarmService(params FarmServiceParams) usecase.FarmUsecase {
	search := config.FarmConfig{DefaultRadiusKm: 10, MaxRadiusKm: 100}
	if params.Config != nil && params.Config.Farm != nil {
		search = *params.Config.Farm
	}

	return &farmService{
		txManager: params.TxManager,
		farmRepo:  params.FarmRepo,
		publisher: params.Publisher,
		search:    search,
		logger:    params.Logger,
	}
}

// Register creates a PENDING farm owned by the calling farmer.
func (s *farmService) Register(ctx context.Context, actor *entity.Actor, input *usecase.RegisterFarmInput) (*entity.Farm, error) {
	if err := requireRole(actor, entity.RoleFarmer); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "invalid farm")
	}

	now := time.Now().UTC()
	farm := &entity.Farm{
		ID:      uuid.New(),
		OwnerID: actor.UserID,
		Name:    name,
		Location: entity.GeoPoint{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		AreaSize:  input.AreaSize,
		SoilType:  input.SoilType,
		Status:    entity.FarmStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.farmRepo.Create(ctx, farm); err != nil {
		return nil, errors.Wrap(err, "failed to create farm")
	}

	s.logger.InfoContext(ctx, "Farm registered",
		slog.String("farmID", farm.ID.String()),
		slog.String("ownerID", farm.OwnerID.String()),
	)

	return farm, nil
}

// Approve moves a PENDING farm to APPROVED.
func (s *farmService) Approve(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := s.decide(ctx, actor, farmID, entity.FarmStatusApproved, nil)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.logger, entity.NewDomainEvent(
		constants.EventFarmApproved,
		farm.ID,
		farm.OwnerID,
		"農場審核通過",
		farm.Name+" 已通過審核",
		map[string]string{"farm_id": farm.ID.String()},
	))

	return farm, nil
}

// Reject moves a PENDING farm to REJECTED. A reason is required.
func (s *farmService) Reject(ctx context.Context, actor *entity.Actor, farmID uuid.UUID, reason string) (*entity.Farm, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("rejection reason is required"), "invalid rejection")
	}

	farm, err := s.decide(ctx, actor, farmID, entity.FarmStatusRejected, &reason)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, s.logger, entity.NewDomainEvent(
		constants.EventFarmRejected,
		farm.ID,
		farm.OwnerID,
		"農場審核未通過",
		reason,
		map[string]string{"farm_id": farm.ID.String(), "reason": reason},
	))

	return farm, nil
}

// decide applies an admin approval decision with a conditional update on PENDING.
func (s *farmService) decide(ctx context.Context, actor *entity.Actor, farmID uuid.UUID, to entity.FarmStatus, reason *string) (*entity.Farm, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	farm, err := findFarm(ctx, s.farmRepo, farmID)
	if err != nil {
		return nil, err
	}
	if !farm.Status.CanTransitionTo(to) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "farm %s -> %s", farm.Status, to)
	}

	if err := s.farmRepo.UpdateStatus(ctx, farm.ID, farm.Status, to, reason); err != nil {
		switch {
		case errors.Is(err, repository.ErrFarmStatusChanged):
			return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "farm %s already decided", farm.ID)
		case errors.Is(err, repository.ErrFarmNotFound):
			return nil, errors.Wrap(domainerrors.ErrFarmNotFound, "farm not found")
		default:
			return nil, errors.Wrap(err, "failed to update farm status")
		}
	}

	s.logger.InfoContext(ctx, "Farm status changed",
		slog.String("farmID", farm.ID.String()),
		slog.String("from", string(farm.Status)),
		slog.String("to", string(to)),
		slog.String("adminID", actor.UserID.String()),
	)

	return findFarm(ctx, s.farmRepo, farm.ID)
}

// Delete removes a farm and its planted crops in one transaction. Farm orders are kept.
func (s *farmService) Delete(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) error {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return err
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		farmRepo := repoFactory.FarmRepo()

		farm, err := findFarm(ctx, farmRepo, farmID)
		if err != nil {
			return err
		}

		if err := repoFactory.PlantedCropRepo().DeleteByFarm(ctx, farm.ID); err != nil {
			return errors.Wrap(err, "failed to delete planted crops")
		}

		if err := farmRepo.Delete(ctx, farm.ID); err != nil {
			return errors.Wrap(err, "failed to delete farm")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to delete farm")
	}

	s.logger.InfoContext(ctx, "Farm deleted", slog.String("farmID", farmID.String()))

	return nil
}

// Rate folds a consumer score into the farm rating.
func (s *farmService) Rate(ctx context.Context, actor *entity.Actor, farmID uuid.UUID, score int) (*entity.Farm, error) {
	if err := requireRole(actor, entity.RoleConsumer); err != nil {
		return nil, err
	}
	if score < minRatingScore || score > maxRatingScore {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("score must be between 1 and 5"), "score %d", score)
	}

	farm, err := findFarm(ctx, s.farmRepo, farmID)
	if err != nil {
		return nil, err
	}
	if err := requireApprovedFarm(farm); err != nil {
		return nil, err
	}

	if err := s.farmRepo.AddRating(ctx, farm.ID, score); err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFarmNotFound, "farm not found")
		}

		return nil, errors.Wrap(err, "failed to rate farm")
	}

	return findFarm(ctx, s.farmRepo, farm.ID)
}

// Get retrieves a farm.
func (s *farmService) Get(ctx context.Context, farmID uuid.UUID) (*entity.Farm, error) {
	return findFarm(ctx, s.farmRepo, farmID)
}

// ListByStatus lists farms in any status for admin inspection. An empty status lists every farm.
func (s *farmService) ListByStatus(ctx context.Context, actor *entity.Actor, status entity.FarmStatus) ([]*entity.Farm, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if status != "" && !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("unknown farm status"), "status %q", status)
	}

	farms, err := s.farmRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farms")
	}

	return farms, nil
}

// ListMine lists the farms owned by the calling farmer.
func (s *farmService) ListMine(ctx context.Context, actor *entity.Actor) ([]*entity.Farm, error) {
	if err := requireRole(actor, entity.RoleFarmer); err != nil {
		return nil, err
	}

	farms, err := s.farmRepo.FindByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farms")
	}

	return farms, nil
}

// FindNearby lists approved farms within radiusKm of point, nearest first.
func (s *farmService) FindNearby(ctx context.Context, point entity.GeoPoint, radiusKm float64) ([]*entity.FarmWithDistance, error) {
	if radiusKm <= 0 {
		radiusKm = s.search.DefaultRadiusKm
	}
	if s.search.MaxRadiusKm > 0 && radiusKm > s.search.MaxRadiusKm {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("radius exceeds the maximum"), "radius %.1fkm", radiusKm)
	}

	farms, err := s.farmRepo.FindByStatus(ctx, entity.FarmStatusApproved)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list approved farms")
	}

	nearby := make([]*entity.FarmWithDistance, 0, len(farms))
	for _, farm := range farms {
		distance := point.DistanceKm(farm.Location)
		if distance <= radiusKm {
			nearby = append(nearby, &entity.FarmWithDistance{Farm: farm, DistanceKm: distance})
		}
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}
