package impl

import (
	"context"
	"log/slog"
	"time"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlantedCropServiceParams holds the dependencies of the planted crop ledger.
type PlantedCropServiceParams struct {
	fx.In

	FarmRepo        repository.FarmRepository
	CropRepo        repository.CropRepository
	PlantedCropRepo repository.PlantedCropRepository
	Config          *config.Config
	Logger          *slog.Logger
}

type plantedCropService struct {
	farmRepo        repository.FarmRepository
	cropRepo        repository.CropRepository
	plantedCropRepo repository.PlantedCropRepository
	strictHarvest   bool
	logger          *slog.Logger
}

// NewPlantedCropService creates the planted crop ledger.
func NewPlantedCropService(params PlantedCropServiceParams) usecase.PlantedCropUsecase {
	strict := false
	if params.Config != nil && params.Config.Ledger != nil {
		strict = params.Config.Ledger.StrictHarvest
	}

	return &plantedCropService{
		farmRepo:        params.FarmRepo,
		cropRepo:        params.CropRepo,
		plantedCropRepo: params.PlantedCropRepo,
		strictHarvest:   strict,
		logger:          params.Logger,
	}
}

// Plant records a new planted crop on an approved farm.
func (s *plantedCropService) Plant(ctx context.Context, actor *entity.Actor, input *usecase.PlantInput) (*entity.PlantedCrop, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, errors.Wrapf(domainerrors.ErrInvalidQuantity, "quantity %d", input.Quantity)
	}
	if input.EstimatedHarvestDate.Before(input.PlantedDate) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("estimated harvest date precedes planted date"), "invalid dates")
	}

	farm, err := findFarm(ctx, s.farmRepo, input.FarmID)
	if err != nil {
		return nil, err
	}
	if err := authorizeFarm(actor, farm); err != nil {
		return nil, err
	}
	if err := requireApprovedFarm(farm); err != nil {
		return nil, err
	}

	crop, err := s.cropRepo.FindByID(ctx, input.CropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCropNotFound, "crop not found")
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	now := time.Now().UTC()
	planted := &entity.PlantedCrop{
		ID:                   uuid.New(),
		FarmID:               farm.ID,
		CropID:               crop.ID,
		CropName:             crop.Name,
		CropCategory:         crop.Category,
		PlantedDate:          input.PlantedDate,
		EstimatedHarvestDate: input.EstimatedHarvestDate,
		Quantity:             input.Quantity,
		Available:            true,
		Status:               constants.PlantedCropStatusPlanted,
		Notes:                input.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.plantedCropRepo.Create(ctx, planted); err != nil {
		return nil, errors.Wrap(err, "failed to create planted crop")
	}

	s.logger.InfoContext(ctx, "Crop planted",
		slog.String("plantedCropID", planted.ID.String()),
		slog.String("farmID", farm.ID.String()),
		slog.Int("quantity", planted.Quantity),
	)

	return planted, nil
}

// AdjustQuantity applies a signed delta to the balance atomically.
func (s *plantedCropService) AdjustQuantity(ctx context.Context, actor *entity.Actor, plantedCropID uuid.UUID, delta int) (*entity.PlantedCrop, error) {
	if delta == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, "delta must not be zero")
	}

	planted, err := s.loadForMutation(ctx, actor, plantedCropID, true)
	if err != nil {
		return nil, err
	}

	if err := s.plantedCropRepo.AdjustQuantity(ctx, planted.ID, delta); err != nil {
		return nil, translateLedgerError(err)
	}

	return s.Get(ctx, planted.ID)
}

// RecordHarvest sets the actual harvest date. Re-recording the same day is a no-op.
func (s *plantedCropService) RecordHarvest(ctx context.Context, actor *entity.Actor, plantedCropID uuid.UUID, harvestedAt time.Time) (*entity.PlantedCrop, error) {
	if harvestedAt.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("harvest date is required"), "invalid harvest date")
	}

	planted, err := s.loadForMutation(ctx, actor, plantedCropID, true)
	if err != nil {
		return nil, err
	}

	if planted.HasHarvestOn(harvestedAt) {
		return planted, nil
	}
	if planted.ActualHarvestDate != nil && s.strictHarvest {
		return nil, errors.Wrapf(domainerrors.ErrHarvestAlreadyRecorded, "harvest recorded on %s", planted.ActualHarvestDate.Format(time.DateOnly))
	}

	if err := s.plantedCropRepo.SetHarvest(ctx, planted.ID, harvestedAt.UTC(), constants.PlantedCropStatusHarvested); err != nil {
		return nil, translateLedgerError(err)
	}

	return s.Get(ctx, planted.ID)
}

// Remove deletes a planted crop regardless of its remaining quantity.
func (s *plantedCropService) Remove(ctx context.Context, actor *entity.Actor, plantedCropID uuid.UUID) error {
	planted, err := s.loadForMutation(ctx, actor, plantedCropID, false)
	if err != nil {
		return err
	}

	if err := s.plantedCropRepo.Delete(ctx, planted.ID); err != nil {
		return translateLedgerError(err)
	}

	if planted.Quantity > 0 {
		s.logger.WarnContext(ctx, "Planted crop removed with unsold stock",
			slog.String("plantedCropID", planted.ID.String()),
			slog.Int("quantity", planted.Quantity),
		)
	}

	return nil
}

// Get retrieves a planted crop joined with its catalog crop.
func (s *plantedCropService) Get(ctx context.Context, plantedCropID uuid.UUID) (*entity.PlantedCrop, error) {
	planted, err := s.plantedCropRepo.FindByID(ctx, plantedCropID)
	if err != nil {
		return nil, translateLedgerError(err)
	}

	return planted, nil
}

// ListByFarm lists the planted crops of a farm. Owners and admins see any farm; others only approved ones.
func (s *plantedCropService) ListByFarm(ctx context.Context, actor *entity.Actor, farmID uuid.UUID) ([]*entity.PlantedCrop, error) {
	farm, err := findFarm(ctx, s.farmRepo, farmID)
	if err != nil {
		return nil, err
	}
	if authorizeFarm(actor, farm) != nil {
		if err := requireApprovedFarm(farm); err != nil {
			return nil, err
		}
	}

	crops, err := s.plantedCropRepo.FindByFarm(ctx, farm.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list planted crops")
	}

	return crops, nil
}

// loadForMutation loads a planted crop and checks the caller may change it.
func (s *plantedCropService) loadForMutation(ctx context.Context, actor *entity.Actor, plantedCropID uuid.UUID, requireApproved bool) (*entity.PlantedCrop, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	planted, err := s.Get(ctx, plantedCropID)
	if err != nil {
		return nil, err
	}

	farm, err := findFarm(ctx, s.farmRepo, planted.FarmID)
	if err != nil {
		return nil, err
	}
	if err := authorizeFarm(actor, farm); err != nil {
		return nil, err
	}
	if requireApproved {
		if err := requireApprovedFarm(farm); err != nil {
			return nil, err
		}
	}

	return planted, nil
}

// translateLedgerError maps planted crop repository errors to domain errors.
func translateLedgerError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPlantedCropNotFound):
		return errors.Wrap(domainerrors.ErrPlantedCropNotFound, "planted crop not found")
	case errors.Is(err, repository.ErrInsufficientQuantity):
		return errors.Wrap(domainerrors.ErrInsufficientQuantity, "planted crop balance too low")
	default:
		return errors.Wrap(err, "planted crop ledger failure")
	}
}
