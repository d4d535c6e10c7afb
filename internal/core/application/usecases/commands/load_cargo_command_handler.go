package commands

import (
	"context"
)

// LoadCargoCommandHandler handles cargo loading on a persisted container.
// Retrieves the container, dispatches Load through its Loadable capability
// so the kind's own rules run, and persists the new cargo mass.
type LoadCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewLoadCargoCommandHandler creates a handler for cargo loading.
// Requires a ContainerUoWFactory for transactional persistence operations.
func NewLoadCargoCommandHandler(uowFactory ContainerUoWFactory) LoadCargoCommandHandler {
	return LoadCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cargo loading command.
// A rejected load leaves the container untouched in storage; the loading
// rule's error is returned to the caller as-is.
func (h *LoadCargoCommandHandler) Handle(ctx context.Context, cmd LoadCargoCommand) error {
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

	containerRepo := uow.ContainerRepository()
	containerEntity, err := containerRepo.Get(ctx, cmd.SerialNumber())
	if err != nil {
		return err
	}

	if err = containerEntity.Load(cmd.Mass()); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, containerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
