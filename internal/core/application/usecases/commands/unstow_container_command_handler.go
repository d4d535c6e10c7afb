package commands

import (
	"context"
)

// UnstowContainerCommandHandler handles taking a container off a ship.
// The unloaded container keeps existing off-ship; only the ship's
// container list changes.
type UnstowContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewUnstowContainerCommandHandler creates a handler for container unstowage.
// Requires a ShipUoWFactory for transactional persistence operations.
func NewUnstowContainerCommandHandler(uowFactory ShipUoWFactory) UnstowContainerCommandHandler {
	return UnstowContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unstowage command.
// When the serial number is not on board, the ship is left untouched and
// no error is returned; absence is an expected outcome of unloading.
func (h *UnstowContainerCommandHandler) Handle(ctx context.Context, cmd UnstowContainerCommand) error {
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
	shipEntity, err := shipRepo.Get(ctx, cmd.ShipID())
	if err != nil {
		return err
	}

	if unloaded := shipEntity.UnloadContainer(cmd.SerialNumber()); unloaded == nil {
		return uow.Commit(ctx)
	}

	if err = shipRepo.Update(ctx, shipEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
