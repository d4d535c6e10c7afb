package commands

import (
	"context"
)

// EmptyContainerCommandHandler handles emptying a persisted container.
// Retrieves the container, clears its cargo, and persists the result.
type EmptyContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewEmptyContainerCommandHandler creates a handler for container emptying.
// Requires a ContainerUoWFactory for transactional persistence operations.
func NewEmptyContainerCommandHandler(uowFactory ContainerUoWFactory) EmptyContainerCommandHandler {
	return EmptyContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the container emptying command.
func (h *EmptyContainerCommandHandler) Handle(ctx context.Context, cmd EmptyContainerCommand) error {
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

	containerEntity.Empty()

	if err = containerRepo.Update(ctx, containerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
