package container

import "stowage/internal/core/domain/model/kernel"

const (
	// hazardousWarningFraction is the share of maximum payload above which a
	// hazardous liquid load raises a hazard notification. The load itself
	// still proceeds; this is a warning channel, not a rejection.
	hazardousWarningFraction = 0.5

	// nonHazardousFillFraction is the share of maximum payload a
	// non-hazardous liquid may be filled to, leaving a safety margin.
	nonHazardousFillFraction = 0.9
)

// LiquidContainer is a cargo container variant for liquids. It fully replaces
// the base loading rule with a hazard-aware one:
//
//   - Hazardous contents: loading more than half the maximum payload raises a
//     hazard notification as a non-fatal side effect, and the load proceeds up
//     to the absolute ceiling.
//   - Non-hazardous contents: loading more than 90% of the maximum payload is
//     rejected with an *OverfillError before any mutation.
//
// In both branches the base absolute-ceiling rule runs as the final authority.
//
// Example usage:
//
//	serial, _ := kernel.NewSerialNumber("KON-L-2")
//	c, err := container.NewLiquidContainer(serial, 0, 250, 900, 300, 500, true, notifier)
//	if err != nil {
//	    return err
//	}
//	_ = c.Load(260) // succeeds, raises a hazard notification (260 > 250)
type LiquidContainer struct {
	Container

	// isHazardous marks the container as carrying dangerous contents
	isHazardous bool

	// notifier is the injected hazard-notification port
	notifier HazardNotifier
}

// NewLiquidContainer creates a new LiquidContainer.
//
// The base attributes are validated exactly as in NewContainer. A nil
// notifier is replaced with a no-op implementation, keeping hazard
// signaling fire-and-forget for callers that do not observe it.
//
// Parameters:
//   - serialNumber, cargoMass, height, tareWeight, depth, maximumPayload:
//     see NewContainer
//   - isHazardous: whether the contents are classified as dangerous
//   - notifier: hazard-notification port (may be nil)
func NewLiquidContainer(
	serialNumber kernel.SerialNumber,
	cargoMass float64,
	height float64,
	tareWeight float64,
	depth float64,
	maximumPayload float64,
	isHazardous bool,
	notifier HazardNotifier,
) (*LiquidContainer, error) {
	base, err := NewContainer(serialNumber, cargoMass, height, tareWeight, depth, maximumPayload)
	if err != nil {
		return nil, err
	}

	return &LiquidContainer{
		Container:   *base,
		isHazardous: isHazardous,
		notifier:    ensureNotifier(notifier),
	}, nil
}

// IsHazardous reports whether the container carries dangerous contents.
func (c *LiquidContainer) IsHazardous() bool {
	return c.isHazardous
}

// Load replaces the base loading rule with the hazard-aware liquid rule.
//
// For hazardous contents a request above half the maximum payload triggers
// NotifyHazard with the container's serial number; the operation still
// proceeds. For non-hazardous contents a request above 90% of the maximum
// payload fails with an *OverfillError before any mutation. The base
// absolute-ceiling check then runs for both branches.
func (c *LiquidContainer) Load(mass float64) error {
	if c.isHazardous {
		if mass > hazardousWarningFraction*c.MaximumPayload() {
			c.notifier.NotifyHazard(c.SerialNumber())
		}
	} else if mass > nonHazardousFillFraction*c.MaximumPayload() {
		return NewOverfillError(c.SerialNumber(), mass, nonHazardousFillFraction*c.MaximumPayload())
	}

	return c.Container.Load(mass)
}

// NotifyHazard implements the HazardNotifier capability by forwarding to the
// injected port. Exposing the capability on the container itself lets other
// hazard sources signal through a liquid container they are adjacent to.
func (c *LiquidContainer) NotifyHazard(serialNumber kernel.SerialNumber) {
	c.notifier.NotifyHazard(serialNumber)
}
