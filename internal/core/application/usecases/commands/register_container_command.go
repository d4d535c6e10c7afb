package commands

import (
	"errors"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var ErrRegisterContainerCommandIsNotConstructed = errors.New(
	"RegisterContainerCommand must be created via NewRegisterContainerCommand constructor",
)

// ContainerAttributes carries the kind-specific attributes of a container
// registration request. Only the fields relevant to the requested kind are
// read; the rest are ignored.
type ContainerAttributes struct {
	// IsHazardous marks a liquid container as carrying hazardous cargo.
	IsHazardous bool
	// Pressure is the working pressure of a gas container, in bars.
	Pressure float64
	// ProductType names the perishable product of a refrigerated container.
	ProductType string
	// RequiredTemperature is the storage temperature of a refrigerated
	// container, in degrees Celsius.
	RequiredTemperature float64
}

// RegisterContainerCommand represents a request to register a new container.
// Encapsulates the container's kind, its shared dimensions, and the
// kind-specific attributes. Registered containers start off-ship.
//
// Example:
//
//	cmd, err := NewRegisterContainerCommand(
//	    "KON-L-1", container.KindLiquid, 0, 2.6, 2300, 12.0, 500,
//	    ContainerAttributes{IsHazardous: true},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid container data: %w", err)
//	}
//
//	handler := NewRegisterContainerCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register container: %w", err)
//	}
type RegisterContainerCommand struct { //nolint:recvcheck //using for validation
	serialNumber   kernel.SerialNumber
	kind           container.Kind
	cargoMass      float64
	height         float64
	tareWeight     float64
	depth          float64
	maximumPayload float64
	attributes     ContainerAttributes

	guard guard.ConstructorGuard
}

// NewRegisterContainerCommand creates a command to register a new container.
// Validates the serial number format and the kind; the dimension and
// attribute values are validated by the domain constructor when the handler
// builds the container.
func NewRegisterContainerCommand(
	serialNumber string,
	kind container.Kind,
	cargoMass float64,
	height float64,
	tareWeight float64,
	depth float64,
	maximumPayload float64,
	attributes ContainerAttributes,
) (RegisterContainerCommand, error) {
	command := RegisterContainerCommand{
		cargoMass:      cargoMass,
		height:         height,
		tareWeight:     tareWeight,
		depth:          depth,
		maximumPayload: maximumPayload,
		attributes:     attributes,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerialNumber(serialNumber),
		command.setKind(kind),
	); err != nil {
		return RegisterContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterContainerCommandIsNotConstructed if validation fails.
func (c RegisterContainerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterContainerCommandIsNotConstructed)
}

// SerialNumber returns the container serial number from the command.
func (c RegisterContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

// Kind returns the requested container kind from the command.
func (c RegisterContainerCommand) Kind() container.Kind {
	return c.kind
}

// CargoMass returns the initial cargo mass from the command.
func (c RegisterContainerCommand) CargoMass() float64 {
	return c.cargoMass
}

// Height returns the container height from the command.
func (c RegisterContainerCommand) Height() float64 {
	return c.height
}

// TareWeight returns the container tare weight from the command.
func (c RegisterContainerCommand) TareWeight() float64 {
	return c.tareWeight
}

// Depth returns the container depth from the command.
func (c RegisterContainerCommand) Depth() float64 {
	return c.depth
}

// MaximumPayload returns the container payload ceiling from the command.
func (c RegisterContainerCommand) MaximumPayload() float64 {
	return c.maximumPayload
}

// Attributes returns the kind-specific attributes from the command.
func (c RegisterContainerCommand) Attributes() ContainerAttributes {
	return c.attributes
}

func (c *RegisterContainerCommand) setSerialNumber(serialNumber string) error {
	parsed, err := kernel.NewSerialNumber(serialNumber)
	if err != nil {
		return err
	}

	c.serialNumber = parsed
	return nil
}

func (c *RegisterContainerCommand) setKind(kind container.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
