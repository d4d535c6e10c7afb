package container

import (
	"errors"
	"fmt"

	"stowage/internal/core/domain/model/kernel"
)

// ErrOverfill is the sentinel behind every *OverfillError.
// Use errors.Is(err, ErrOverfill) to classify a failed load.
var ErrOverfill = errors.New("container overfill")

// OverfillError reports that a load request exceeded the threshold applicable
// to the container variant. The container state is left unchanged, so the
// caller may retry with a smaller mass.
type OverfillError struct {
	// SerialNumber identifies the container that rejected the load.
	SerialNumber kernel.SerialNumber
	// RequestedMass is the cargo mass that was asked for.
	RequestedMass float64
	// AllowedMass is the threshold the request violated. For the base rule
	// this is the maximum payload; for a non-hazardous liquid it is 90% of it.
	AllowedMass float64
}

// NewOverfillError creates an OverfillError for the given container and masses.
func NewOverfillError(serialNumber kernel.SerialNumber, requestedMass, allowedMass float64) *OverfillError {
	return &OverfillError{
		SerialNumber:  serialNumber,
		RequestedMass: requestedMass,
		AllowedMass:   allowedMass,
	}
}

// Error formats a descriptive message naming the container and both masses.
func (e *OverfillError) Error() string {
	return fmt.Sprintf("%s: container %s cannot take %g kg of cargo, at most %g kg is allowed",
		ErrOverfill, e.SerialNumber, e.RequestedMass, e.AllowedMass)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *OverfillError) Unwrap() error {
	return ErrOverfill
}
