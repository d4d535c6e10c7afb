package commands

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var (
	ErrRegisterShipCommandIsNotConstructed = errors.New(
		"RegisterShipCommand must be created via NewRegisterShipCommand constructor",
	)
	ErrNameIsRequired             = errors.New("name is required")
	ErrMaxSpeedIsInvalid          = errors.New("maxSpeed must be greater than 0")
	ErrMaxContainerCountIsInvalid = errors.New("maxContainerCount must not be negative")
	ErrMaxWeightCapacityIsInvalid = errors.New("maxWeightCapacity must not be negative")
)

// RegisterShipCommand represents a request to register a new ship in the fleet.
// Encapsulates all data needed to create a ship with its capacity parameters.
//
// Example:
//
//	cmd, err := NewRegisterShipCommand("MV Aurora", 22.5, 8, 40000)
//	if err != nil {
//	    return fmt.Errorf("invalid ship data: %w", err)
//	}
//
//	handler := NewRegisterShipCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register ship: %w", err)
//	}
//	fmt.Printf("Registered ship with ID: %s", cmd.ShipID())
type RegisterShipCommand struct { //nolint:recvcheck //using for validation
	shipID            kernel.UUID
	name              string
	maxSpeed          float64
	maxContainerCount int
	maxWeightCapacity float64

	guard guard.ConstructorGuard
}

// NewRegisterShipCommand creates a command to register a new ship.
// Automatically generates a unique ID for the ship.
// Validates that name is not empty, maxSpeed is positive, and both
// capacity parameters are not negative (zero is legal for both).
func NewRegisterShipCommand(
	name string,
	maxSpeed float64,
	maxContainerCount int,
	maxWeightCapacity float64,
) (RegisterShipCommand, error) {
	command := RegisterShipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(kernel.NewUUID()),
		command.setName(name),
		command.setMaxSpeed(maxSpeed),
		command.setMaxContainerCount(maxContainerCount),
		command.setMaxWeightCapacity(maxWeightCapacity),
	); err != nil {
		return RegisterShipCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterShipCommandIsNotConstructed if validation fails.
func (c RegisterShipCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShipCommandIsNotConstructed)
}

// ShipID returns the ship ID from the command.
func (c RegisterShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Name returns the ship name from the command.
func (c RegisterShipCommand) Name() string {
	return c.name
}

// MaxSpeed returns the ship's top speed from the command.
func (c RegisterShipCommand) MaxSpeed() float64 {
	return c.maxSpeed
}

// MaxContainerCount returns the ship's container slot count from the command.
func (c RegisterShipCommand) MaxContainerCount() int {
	return c.maxContainerCount
}

// MaxWeightCapacity returns the ship's cargo mass ceiling from the command.
func (c RegisterShipCommand) MaxWeightCapacity() float64 {
	return c.maxWeightCapacity
}

func (c *RegisterShipCommand) setShipID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipID = id
	return nil
}

func (c *RegisterShipCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterShipCommand) setMaxSpeed(maxSpeed float64) error {
	if maxSpeed <= 0 {
		return ErrMaxSpeedIsInvalid
	}

	c.maxSpeed = maxSpeed
	return nil
}

func (c *RegisterShipCommand) setMaxContainerCount(maxContainerCount int) error {
	if maxContainerCount < 0 {
		return ErrMaxContainerCountIsInvalid
	}

	c.maxContainerCount = maxContainerCount
	return nil
}

func (c *RegisterShipCommand) setMaxWeightCapacity(maxWeightCapacity float64) error {
	if maxWeightCapacity < 0 {
		return ErrMaxWeightCapacityIsInvalid
	}

	c.maxWeightCapacity = maxWeightCapacity
	return nil
}
