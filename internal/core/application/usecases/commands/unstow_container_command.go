package commands

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var ErrUnstowContainerCommandIsNotConstructed = errors.New(
	"UnstowContainerCommand must be created via NewUnstowContainerCommand constructor",
)

// UnstowContainerCommand represents a request to take a container off a
// ship by serial number. A serial number that is not on board is a quiet
// no-op at the domain level, not a failure.
type UnstowContainerCommand struct { //nolint:recvcheck //using for validation
	shipID       kernel.UUID
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewUnstowContainerCommand creates a command to unstow a container.
// Validates the ship ID and the serial number format.
func NewUnstowContainerCommand(shipID kernel.UUID, serialNumber string) (UnstowContainerCommand, error) {
	command := UnstowContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(shipID),
		command.setSerialNumber(serialNumber),
	); err != nil {
		return UnstowContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnstowContainerCommandIsNotConstructed if validation fails.
func (c UnstowContainerCommand) Validate() error {
	return c.guard.Validate(ErrUnstowContainerCommandIsNotConstructed)
}

// ShipID returns the ship ID from the command.
func (c UnstowContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

// SerialNumber returns the container serial number from the command.
func (c UnstowContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

func (c *UnstowContainerCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *UnstowContainerCommand) setSerialNumber(serialNumber string) error {
	parsed, err := kernel.NewSerialNumber(serialNumber)
	if err != nil {
		return err
	}

	c.serialNumber = parsed
	return nil
}
