package commands

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var ErrEmptyContainerCommandIsNotConstructed = errors.New(
	"EmptyContainerCommand must be created via NewEmptyContainerCommand constructor",
)

// EmptyContainerCommand represents a request to remove all cargo from a
// registered container. Emptying always succeeds; an already empty
// container stays empty.
type EmptyContainerCommand struct { //nolint:recvcheck //using for validation
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewEmptyContainerCommand creates a command to empty a container.
func NewEmptyContainerCommand(serialNumber string) (EmptyContainerCommand, error) {
	command := EmptyContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSerialNumber(serialNumber); err != nil {
		return EmptyContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEmptyContainerCommandIsNotConstructed if validation fails.
func (c EmptyContainerCommand) Validate() error {
	return c.guard.Validate(ErrEmptyContainerCommandIsNotConstructed)
}

// SerialNumber returns the container serial number from the command.
func (c EmptyContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

func (c *EmptyContainerCommand) setSerialNumber(serialNumber string) error {
	parsed, err := kernel.NewSerialNumber(serialNumber)
	if err != nil {
		return err
	}

	c.serialNumber = parsed
	return nil
}
