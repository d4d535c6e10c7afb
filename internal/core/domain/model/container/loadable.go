package container

import "stowage/internal/core/domain/model/kernel"

// Loadable is the capability every container variant implements.
//
// Callers must hold container references through this interface (or another
// variant-typed reference) so the variant-specific loading rule is the one
// invoked; loading through a plain base-typed value would silently fall back
// to the base rule and skip the liquid thresholds.
type Loadable interface {
	// Load mutates the cargo mass to mass when it passes the
	// variant-specific rule; on failure the cargo mass is unchanged
	// and an *OverfillError is returned.
	Load(mass float64) error

	// Empty unconditionally sets the cargo mass to zero.
	Empty()

	// SerialNumber returns the immutable container identifier.
	SerialNumber() kernel.SerialNumber

	// CargoMass returns the current cargo mass.
	CargoMass() float64

	// MaximumPayload returns the absolute upper bound on cargo mass.
	MaximumPayload() float64

	// Validate reports whether the container was properly constructed.
	Validate() error
}

// HazardNotifier is the port through which container variants signal an
// overfill-adjacent hazardous condition. Notification is fire and forget:
// it has no return value, no failure mode, and never blocks a load.
//
// Implementations are injected at construction time so tests can assert
// that a notification was raised for a given serial number without
// capturing output.
type HazardNotifier interface {
	NotifyHazard(serialNumber kernel.SerialNumber)
}

// HazardNotifierFunc adapts a plain function to the HazardNotifier port.
//
// Example:
//
//	var notified []kernel.SerialNumber
//	notifier := container.HazardNotifierFunc(func(s kernel.SerialNumber) {
//	    notified = append(notified, s)
//	})
type HazardNotifierFunc func(serialNumber kernel.SerialNumber)

// NotifyHazard calls f(serialNumber).
func (f HazardNotifierFunc) NotifyHazard(serialNumber kernel.SerialNumber) {
	f(serialNumber)
}

// noopHazardNotifier is the default used when no notifier is injected.
type noopHazardNotifier struct{}

func (noopHazardNotifier) NotifyHazard(kernel.SerialNumber) {}

// ensureNotifier keeps hazard signaling nil-safe for variants constructed
// without an explicit notifier.
func ensureNotifier(notifier HazardNotifier) HazardNotifier {
	if notifier == nil {
		return noopHazardNotifier{}
	}
	return notifier
}
