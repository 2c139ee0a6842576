// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requireActor fails when no authenticated caller is present.
func requireActor(actor *entity.Actor) error {
	if actor == nil || actor.UserID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	return nil
}

// requireRole fails unless the actor holds role.
func requireRole(actor *entity.Actor, role entity.Role) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.HasRole(role) {
		return errors.Wrapf(domainerrors.ErrUnauthorized, "role %s required", role)
	}

	return nil
}

// authorizeFarm allows admins and the farmer who owns the farm.
func authorizeFarm(actor *entity.Actor, farm *entity.Farm) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor.IsAdmin() {
		return nil
	}
	if actor.HasRole(entity.RoleFarmer) && actor.Owns(farm.OwnerID) {
		return nil
	}

	return errors.Wrap(domainerrors.ErrUnauthorized, "not the owner of the farm")
}

// findFarm loads a farm and translates the repository miss.
func findFarm(ctx context.Context, farmRepo repository.FarmRepository, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := farmRepo.FindByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFarmNotFound, "farm not found")
		}

		return nil, errors.Wrap(err, "failed to find farm")
	}

	return farm, nil
}

// requireApprovedFarm fails with FarmNotApproved unless the farm is APPROVED.
func requireApprovedFarm(farm *entity.Farm) error {
	if !farm.IsApproved() {
		return errors.Wrapf(domainerrors.ErrFarmNotApproved, "farm %s is %s", farm.ID, farm.Status)
	}

	return nil
}

// publishEvent hands an event to the publisher. Failures are logged and never returned.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.DomainEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish domain event",
			slog.String("type", event.Type),
			slog.String("aggregateID", event.AggregateID.String()),
			slog.Any("error", err),
		)
	}
}
