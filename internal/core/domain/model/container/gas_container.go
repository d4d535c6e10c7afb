package container

import (
	"fmt"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
)

// GasContainer is a cargo container variant for pressurized gases. Its
// loading rule is numerically identical to the base rule, but the override is
// kept explicit so gas-specific thresholds can be added without changing any
// dispatch site, and the hazard-notification capability stays wired for the
// same reason even though Load never invokes it today.
type GasContainer struct {
	Container

	// pressure the vessel is rated for
	pressure float64

	// notifier is the injected hazard-notification port
	notifier HazardNotifier
}

// NewGasContainer creates a new GasContainer.
//
// The base attributes are validated exactly as in NewContainer; pressure must
// not be negative. A nil notifier is replaced with a no-op implementation.
func NewGasContainer(
	serialNumber kernel.SerialNumber,
	cargoMass float64,
	height float64,
	tareWeight float64,
	depth float64,
	maximumPayload float64,
	pressure float64,
	notifier HazardNotifier,
) (*GasContainer, error) {
	if pressure < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"pressure is invalid",
			fmt.Errorf("%g is less than 0", pressure),
		)
	}

	base, err := NewContainer(serialNumber, cargoMass, height, tareWeight, depth, maximumPayload)
	if err != nil {
		return nil, err
	}

	return &GasContainer{
		Container: *base,
		pressure:  pressure,
		notifier:  ensureNotifier(notifier),
	}, nil
}

// Pressure returns the rated pressure of the vessel.
func (c *GasContainer) Pressure() float64 {
	return c.pressure
}

// Load applies the base absolute-ceiling rule. The override is deliberately
// thin: it preserves explicit variant dispatch without changing the numbers.
func (c *GasContainer) Load(mass float64) error {
	return c.Container.Load(mass)
}

// NotifyHazard implements the HazardNotifier capability by forwarding to the
// injected port.
func (c *GasContainer) NotifyHazard(serialNumber kernel.SerialNumber) {
	c.notifier.NotifyHazard(serialNumber)
}

// compile-time capability checks
var (
	_ Loadable       = (*Container)(nil)
	_ Loadable       = (*LiquidContainer)(nil)
	_ Loadable       = (*GasContainer)(nil)
	_ Loadable       = (*RefrigeratedContainer)(nil)
	_ HazardNotifier = (*LiquidContainer)(nil)
	_ HazardNotifier = (*GasContainer)(nil)
)
