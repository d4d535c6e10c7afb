package commands

import (
	"context"

	"stowage/internal/core/domain/model/ship"
)

// RegisterShipCommandHandler handles the business logic for ship registration.
// Creates and persists new ship aggregates with their capacity parameters.
//
// Example:
//
//	handler := NewRegisterShipCommandHandler(uowFactory)
//	cmd, _ := NewRegisterShipCommand("MV Aurora", 22.5, 8, 40000)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("ship registration failed: %w", err)
//	}
type RegisterShipCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewRegisterShipCommandHandler creates a handler for ship registration.
// Requires a ShipUoWFactory for transactional persistence operations.
func NewRegisterShipCommandHandler(uowFactory ShipUoWFactory) RegisterShipCommandHandler {
	return RegisterShipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ship registration command.
// Creates a new ship aggregate and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *RegisterShipCommandHandler) Handle(ctx context.Context, cmd RegisterShipCommand) error {
	if err := cmd.Validate(); err != nil {
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
	shipEntity, err := ship.NewShip(
		cmd.ShipID(),
		cmd.Name(),
		cmd.MaxSpeed(),
		cmd.MaxContainerCount(),
		cmd.MaxWeightCapacity(),
	)
	if err != nil {
		return err
	}

	if err = shipRepo.Add(ctx, shipEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
