package commands

import (
	"context"
)

// StowContainerCommandHandler handles loading an off-ship container onto a
// ship. Both aggregates are read and written within one transaction so the
// ship's container list and the container's assignment stay consistent.
type StowContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewStowContainerCommandHandler creates a handler for container stowage.
// Requires a UoWFactory spanning the ship and container repositories.
func NewStowContainerCommandHandler(uowFactory UoWFactory) StowContainerCommandHandler {
	return StowContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stowage command.
// The ship's capacity checks run before any mutation; a rejected stow
// leaves both the ship and the container exactly as they were.
func (h *StowContainerCommandHandler) Handle(ctx context.Context, cmd StowContainerCommand) error {
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

	containerEntity, err := uow.ContainerRepository().Get(ctx, cmd.SerialNumber())
	if err != nil {
		return err
	}

	if err = shipEntity.LoadContainer(containerEntity); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, shipEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
