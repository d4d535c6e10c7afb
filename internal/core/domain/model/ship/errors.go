package ship

import (
	"errors"
	"fmt"

	"stowage/internal/core/domain/model/kernel"
)

// Sentinel errors for the fleet-level loading rules.
var (
	// ErrCapacityExceeded is the sentinel behind every *CapacityExceededError.
	ErrCapacityExceeded = errors.New("ship container capacity exceeded")

	// ErrWeightExceeded is the sentinel behind every *WeightExceededError.
	ErrWeightExceeded = errors.New("ship weight capacity exceeded")

	// ErrShipIsNotConstructed indicates that a Ship was not properly
	// initialized through the NewShip constructor function.
	ErrShipIsNotConstructed = errors.New("Ship must be created via NewShip constructor")
)

// CapacityExceededError reports that a ship already holds its maximum number
// of containers. The collection is left unchanged.
type CapacityExceededError struct {
	ShipID            kernel.UUID
	MaxContainerCount int
}

// NewCapacityExceededError creates a CapacityExceededError for the given ship.
func NewCapacityExceededError(shipID kernel.UUID, maxContainerCount int) *CapacityExceededError {
	return &CapacityExceededError{
		ShipID:            shipID,
		MaxContainerCount: maxContainerCount,
	}
}

// Error formats a descriptive message naming the ship and its limit.
func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: ship %s already carries %d containers",
		ErrCapacityExceeded, e.ShipID, e.MaxContainerCount)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// WeightExceededError reports that loading a container would push the
// aggregate cargo mass past the ship's weight capacity. The collection is
// left unchanged.
type WeightExceededError struct {
	ShipID            kernel.UUID
	CurrentCargoMass  float64
	RequestedMass     float64
	MaxWeightCapacity float64
}

// NewWeightExceededError creates a WeightExceededError for the given ship and masses.
func NewWeightExceededError(shipID kernel.UUID, currentCargoMass, requestedMass, maxWeightCapacity float64) *WeightExceededError {
	return &WeightExceededError{
		ShipID:            shipID,
		CurrentCargoMass:  currentCargoMass,
		RequestedMass:     requestedMass,
		MaxWeightCapacity: maxWeightCapacity,
	}
}

// Error formats a descriptive message with the masses involved.
func (e *WeightExceededError) Error() string {
	return fmt.Sprintf("%s: ship %s carries %g kg, loading %g kg would exceed the %g kg capacity",
		ErrWeightExceeded, e.ShipID, e.CurrentCargoMass, e.RequestedMass, e.MaxWeightCapacity)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *WeightExceededError) Unwrap() error {
	return ErrWeightExceeded
}
