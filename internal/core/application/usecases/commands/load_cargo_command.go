package commands

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var ErrLoadCargoCommandIsNotConstructed = errors.New(
	"LoadCargoCommand must be created via NewLoadCargoCommand constructor",
)

// LoadCargoCommand represents a request to load cargo into a registered
// container. The container's own loading rules decide whether the mass is
// accepted; the command only identifies the container and the mass.
//
// Example:
//
//	cmd, err := NewLoadCargoCommand("KON-L-1", 260)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewLoadCargoCommandHandler(uowFactory)
//	if errors.Is(handler.Handle(ctx, cmd), container.ErrOverfill) {
//	    // The container rejected the mass; its state is unchanged
//	}
type LoadCargoCommand struct { //nolint:recvcheck //using for validation
	serialNumber kernel.SerialNumber
	mass         float64

	guard guard.ConstructorGuard
}

// NewLoadCargoCommand creates a command to load cargo into a container.
// Validates the serial number format; the mass itself is judged by the
// container's loading rules when the handler dispatches the load.
func NewLoadCargoCommand(serialNumber string, mass float64) (LoadCargoCommand, error) {
	command := LoadCargoCommand{
		mass:  mass,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSerialNumber(serialNumber); err != nil {
		return LoadCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoadCargoCommandIsNotConstructed if validation fails.
func (c LoadCargoCommand) Validate() error {
	return c.guard.Validate(ErrLoadCargoCommandIsNotConstructed)
}

// SerialNumber returns the container serial number from the command.
func (c LoadCargoCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

// Mass returns the cargo mass to load from the command.
func (c LoadCargoCommand) Mass() float64 {
	return c.mass
}

func (c *LoadCargoCommand) setSerialNumber(serialNumber string) error {
	parsed, err := kernel.NewSerialNumber(serialNumber)
	if err != nil {
		return err
	}

	c.serialNumber = parsed
	return nil
}
