package commands

import (
	"context"
	"errors"

	"stowage/internal/core/domain/services"
)

var ErrNoUnstowedContainersFound = errors.New("no unstowed containers found")

// AutoStowCommandHandler orchestrates the automatic stowage process.
// Finds containers waiting at the dock and matches them with fleet capacity
// using the stowage planning rules. Ensures transactional consistency when
// updating the receiving ship.
//
// Example:
//
//	handler := NewAutoStowCommandHandler(uowFactory)
//	cmd := NewAutoStowCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoUnstowedContainersFound):
//	    log.Println("Dock is empty")
//	case errors.Is(err, services.ErrShipNotFound):
//	    log.Println("No ship can take the container")
//	case err != nil:
//	    log.Printf("Stowage failed: %v", err)
//	}
type AutoStowCommandHandler struct {
	uowFactory UoWFactory
}

// NewAutoStowCommandHandler creates a handler for automatic stowage operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAutoStowCommandHandler(uowFactory UoWFactory) AutoStowCommandHandler {
	return AutoStowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the automatic stowage command.
// Retrieves the first unstowed container, loads the fleet, and uses
// StowagePlanner to pick the ship with the most free weight capacity.
// Returns ErrNoUnstowedContainersFound when the dock is empty and
// services.ErrShipNotFound when no ship can accept the container.
func (h AutoStowCommandHandler) Handle(ctx context.Context, command AutoStowCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipRepo := uow.ShipRepository()
	containerRepo := uow.ContainerRepository()

	containers, err := containerRepo.GetAllUnstowed(ctx)
	if err != nil {
		return err
	}
	if len(containers) == 0 {
		return ErrNoUnstowedContainersFound
	}

	ships, err := shipRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	assignedShip, err := services.NewStowagePlanner().Plan(containers[0], ships)
	if err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, assignedShip); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
