package commands

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var ErrStowContainerCommandIsNotConstructed = errors.New(
	"StowContainerCommand must be created via NewStowContainerCommand constructor",
)

// StowContainerCommand represents a request to load an off-ship container
// onto a specific ship. The ship's count and weight capacity checks run
// before the container is accepted.
//
// Example:
//
//	cmd, err := NewStowContainerCommand(shipID, "KON-C-1")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewStowContainerCommandHandler(uowFactory)
//	if errors.Is(handler.Handle(ctx, cmd), ship.ErrCapacityExceeded) {
//	    // All container slots on the ship are taken
//	}
type StowContainerCommand struct { //nolint:recvcheck //using for validation
	shipID       kernel.UUID
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewStowContainerCommand creates a command to stow a container on a ship.
// Validates the ship ID and the serial number format.
func NewStowContainerCommand(shipID kernel.UUID, serialNumber string) (StowContainerCommand, error) {
	command := StowContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(shipID),
		command.setSerialNumber(serialNumber),
	); err != nil {
		return StowContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStowContainerCommandIsNotConstructed if validation fails.
func (c StowContainerCommand) Validate() error {
	return c.guard.Validate(ErrStowContainerCommandIsNotConstructed)
}

// ShipID returns the target ship ID from the command.
func (c StowContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

// SerialNumber returns the container serial number from the command.
func (c StowContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

func (c *StowContainerCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *StowContainerCommand) setSerialNumber(serialNumber string) error {
	parsed, err := kernel.NewSerialNumber(serialNumber)
	if err != nil {
		return err
	}

	c.serialNumber = parsed
	return nil
}
