package container

import (
	"errors"
	"fmt"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
)

// ErrContainerIsNotConstructed indicates that a Container was not properly
// initialized through the NewContainer constructor function.
var ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")

// Container is the base cargo container entity. It holds the immutable
// physical attributes fixed at manufacturing time and the mutable cargo mass,
// and enforces the generic loading rule: cargo mass may never exceed the
// maximum payload.
//
// Variants (LiquidContainer, GasContainer, RefrigeratedContainer) embed
// Container and either reuse or replace its loading rule. Callers that need
// variant-specific behavior must dispatch through the Loadable capability.
//
// Key business rules:
//   - Must be constructed through NewContainer (or a variant constructor)
//   - Serial number, geometry, and maximum payload are immutable
//   - Cargo mass changes only through Load and Empty
//   - A failed Load leaves cargo mass unchanged
//
// Example usage:
//
//	serial, _ := kernel.NewSerialNumber("KON-C-1")
//	c, err := container.NewContainer(serial, 0, 250, 1200, 300, 5000)
//	if err != nil {
//	    return err
//	}
//
//	if err := c.Load(4200); err != nil {
//	    var overfill *container.OverfillError
//	    if errors.As(err, &overfill) {
//	        // handle rejected load, container state unchanged
//	    }
//	}
type Container struct {
	// serialNumber uniquely identifies the container
	serialNumber kernel.SerialNumber

	// cargoMass is the mass of the currently loaded cargo
	cargoMass float64

	// height of the container shell
	height float64

	// tareWeight is the mass of the empty container itself
	tareWeight float64

	// depth of the container shell
	depth float64

	// maximumPayload is the absolute upper bound on cargo mass
	maximumPayload float64

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewContainer creates a new base Container with the specified attributes.
// This is the only way to create a properly initialized Container instance.
//
// The constructor validates all input parameters and ensures the entity is in
// a consistent state before returning. All validation errors are aggregated
// and returned as a single error.
//
// Parameters:
//   - serialNumber: Unique identifier (must be a constructed SerialNumber)
//   - cargoMass: Initial cargo mass (0 ≤ cargoMass ≤ maximumPayload)
//   - height: Shell height (must be greater than 0)
//   - tareWeight: Mass of the empty container (must not be negative)
//   - depth: Shell depth (must be greater than 0)
//   - maximumPayload: Absolute cargo mass ceiling (must be greater than 0)
//
// Returns:
//   - *Container: Properly initialized container entity
//   - error: Aggregated validation errors, if any
func NewContainer(
	serialNumber kernel.SerialNumber,
	cargoMass float64,
	height float64,
	tareWeight float64,
	depth float64,
	maximumPayload float64,
) (*Container, error) {
	c := &Container{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setSerialNumber(serialNumber),
		c.setHeight(height),
		c.setTareWeight(tareWeight),
		c.setDepth(depth),
		c.setMaximumPayload(maximumPayload),
		c.setInitialCargoMass(cargoMass),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two containers for equality based on their serial numbers.
// Two containers are considered equal if they carry the same serial number,
// following DDD principles where entity equality is determined by identity.
//
// Parameters:
//   - other: The Container to compare with (can be nil)
//
// Returns:
//   - bool: True if both containers have the same serial number
func (c *Container) IsEqual(other *Container) bool {
	return other != nil && c.serialNumber.IsEqual(other.serialNumber)
}

// SerialNumber returns the unique identifier of the container.
// The serial number is immutable and set during construction.
func (c *Container) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

// CargoMass returns the mass of the currently loaded cargo.
func (c *Container) CargoMass() float64 {
	return c.cargoMass
}

// Height returns the shell height of the container.
func (c *Container) Height() float64 {
	return c.height
}

// TareWeight returns the mass of the empty container itself.
func (c *Container) TareWeight() float64 {
	return c.tareWeight
}

// Depth returns the shell depth of the container.
func (c *Container) Depth() float64 {
	return c.depth
}

// MaximumPayload returns the absolute upper bound on cargo mass.
// This bound is independent of any hazard classification.
func (c *Container) MaximumPayload() float64 {
	return c.maximumPayload
}

// Load applies the base loading rule: the cargo mass becomes mass when
// 0 ≤ mass ≤ maximumPayload; otherwise the operation fails and the cargo
// mass is left unchanged.
//
// This rule is the final authority for every variant: overridden rules end
// in this absolute-ceiling check before any mutation happens.
//
// Parameters:
//   - mass: Requested cargo mass (must not be negative)
//
// Returns:
//   - error: ValueIsInvalidError for a negative mass,
//     *OverfillError when mass exceeds the maximum payload
//
// Example:
//
//	if err := c.Load(4200); err != nil {
//	    if errors.Is(err, container.ErrOverfill) {
//	        // retry with a smaller mass if desired; state is unchanged
//	    }
//	    return err
//	}
func (c *Container) Load(mass float64) error {
	if mass < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"mass is invalid",
			fmt.Errorf("%g is less than 0", mass),
		)
	}

	if mass > c.maximumPayload {
		return NewOverfillError(c.serialNumber, mass, c.maximumPayload)
	}

	c.cargoMass = mass
	return nil
}

// Empty unconditionally removes all cargo, setting the cargo mass to zero.
// There is no error condition: emptying an already empty container is a no-op.
func (c *Container) Empty() {
	c.cargoMass = 0
}

// Validate checks if the Container entity is in a valid state.
// This method ensures the entity was properly constructed through the
// NewContainer constructor function (or a variant constructor).
//
// Returns:
//   - error: ErrContainerIsNotConstructed if not properly initialized
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

func (c *Container) setSerialNumber(serialNumber kernel.SerialNumber) error {
	if err := serialNumber.Validate(); err != nil {
		return err
	}

	c.serialNumber = serialNumber
	return nil
}

func (c *Container) setHeight(height float64) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"height is invalid",
			fmt.Errorf("%g is not greater than 0", height),
		)
	}

	c.height = height
	return nil
}

func (c *Container) setTareWeight(tareWeight float64) error {
	if tareWeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"tareWeight is invalid",
			fmt.Errorf("%g is less than 0", tareWeight),
		)
	}

	c.tareWeight = tareWeight
	return nil
}

func (c *Container) setDepth(depth float64) error {
	if depth <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"depth is invalid",
			fmt.Errorf("%g is not greater than 0", depth),
		)
	}

	c.depth = depth
	return nil
}

func (c *Container) setMaximumPayload(maximumPayload float64) error {
	if maximumPayload <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maximumPayload is invalid",
			fmt.Errorf("%g is not greater than 0", maximumPayload),
		)
	}

	c.maximumPayload = maximumPayload
	return nil
}

// setInitialCargoMass applies the base ceiling to the construction-time cargo
// mass. Runs after setMaximumPayload so the ceiling is already in place.
func (c *Container) setInitialCargoMass(cargoMass float64) error {
	return c.Load(cargoMass)
}
