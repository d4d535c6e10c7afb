package commands

import (
	"context"

	"stowage/internal/core/domain/model/container"
)

// RegisterContainerCommandHandler handles the business logic for container
// registration. Builds the concrete container kind requested by the command
// and persists it; hazard-capable kinds are wired to the injected notifier
// so hazard warnings reach the outside world from the very first load.
//
// Example:
//
//	handler := NewRegisterContainerCommandHandler(uowFactory, notifier)
//	cmd, _ := NewRegisterContainerCommand(
//	    "KON-G-1", container.KindGas, 0, 2.6, 2500, 12.0, 1000,
//	    ContainerAttributes{Pressure: 12.5},
//	)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("container registration failed: %w", err)
//	}
type RegisterContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
	notifier   container.HazardNotifier
}

// NewRegisterContainerCommandHandler creates a handler for container registration.
// Requires a ContainerUoWFactory for transactional persistence and a
// HazardNotifier for hazard-capable container kinds.
func NewRegisterContainerCommandHandler(
	uowFactory ContainerUoWFactory,
	notifier container.HazardNotifier,
) RegisterContainerCommandHandler {
	return RegisterContainerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the container registration command.
// Builds the concrete container kind and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *RegisterContainerCommandHandler) Handle(ctx context.Context, cmd RegisterContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	containerEntity, err := h.buildContainer(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContainerRepository().Add(ctx, containerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *RegisterContainerCommandHandler) buildContainer(cmd RegisterContainerCommand) (container.Loadable, error) {
	attrs := cmd.Attributes()

	switch cmd.Kind() {
	case container.KindLiquid:
		return container.NewLiquidContainer(
			cmd.SerialNumber(), cmd.CargoMass(), cmd.Height(), cmd.TareWeight(),
			cmd.Depth(), cmd.MaximumPayload(), attrs.IsHazardous, h.notifier)
	case container.KindGas:
		return container.NewGasContainer(
			cmd.SerialNumber(), cmd.CargoMass(), cmd.Height(), cmd.TareWeight(),
			cmd.Depth(), cmd.MaximumPayload(), attrs.Pressure, h.notifier)
	case container.KindRefrigerated:
		return container.NewRefrigeratedContainer(
			cmd.SerialNumber(), cmd.CargoMass(), cmd.Height(), cmd.TareWeight(),
			cmd.Depth(), cmd.MaximumPayload(), attrs.ProductType, attrs.RequiredTemperature)
	default:
		return container.NewContainer(
			cmd.SerialNumber(), cmd.CargoMass(), cmd.Height(), cmd.TareWeight(),
			cmd.Depth(), cmd.MaximumPayload())
	}
}
