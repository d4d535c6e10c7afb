package ship

import (
	"errors"
	"fmt"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

// Ship is the fleet-carrier aggregate root. It owns an ordered collection of
// container references and enforces the two fleet-level invariants on every
// load: the container count never exceeds maxContainerCount, and the
// aggregate cargo mass never exceeds maxWeightCapacity.
//
// Containers are referenced through the Loadable capability, never owned:
// a container removed from a ship keeps existing, and a standalone container
// belongs to no ship at all. Serial numbers are unique by convention, not
// enforced here. Insertion order is load order.
//
// Key business rules:
//   - Must be constructed through NewShip or RestoreShip
//   - Both capacity checks run before any mutation (check-then-commit)
//   - A zero-capacity ship (maxContainerCount == 0) rejects the very first load
//   - Removing an absent container is a silent no-op
//   - Unloading an unknown serial number returns nil, not an error
//
// Example usage:
//
//	s, err := ship.NewShip(kernel.NewUUID(), "MV Aurora", 22.5, 2, 1000)
//	if err != nil {
//	    return err
//	}
//
//	if err := s.LoadContainer(c); err != nil {
//	    if errors.Is(err, ship.ErrWeightExceeded) {
//	        // the ship is full by weight; the collection is unchanged
//	    }
//	}
type Ship struct {
	// id uniquely identifies the ship
	id kernel.UUID
	// name is the human-readable vessel name
	name string
	// maxSpeed is the vessel's top speed in knots
	maxSpeed float64
	// maxContainerCount bounds how many containers fit on board
	maxContainerCount int
	// maxWeightCapacity bounds the aggregate cargo mass on board
	maxWeightCapacity float64
	// containers holds the on-board container references in load order
	containers []container.Loadable
	// guard ensures the ship was properly constructed
	guard guard.ConstructorGuard
}

// NewShip creates a new empty Ship with the specified capacity parameters.
// This is the only way to create a valid Ship instance.
//
// Parameters:
//   - id: Unique identifier (must be a constructed UUID)
//   - name: Human-readable vessel name (must be non-empty)
//   - maxSpeed: Top speed in knots (must be greater than 0)
//   - maxContainerCount: Container slot count (must not be negative; zero is
//     legal and produces a ship that rejects every load)
//   - maxWeightCapacity: Aggregate cargo mass ceiling (must not be negative)
//
// Returns:
//   - *Ship: A fully initialized, empty ship
//   - error: Aggregated validation errors, if any
func NewShip(
	id kernel.UUID,
	name string,
	maxSpeed float64,
	maxContainerCount int,
	maxWeightCapacity float64,
) (*Ship, error) {
	s := &Ship{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setMaxSpeed(maxSpeed),
		s.setMaxContainerCount(maxContainerCount),
		s.setMaxWeightCapacity(maxWeightCapacity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShip reconstructs a Ship aggregate from persistent storage,
// including the containers that were on board at the time of persistence.
// The restored ship behaves identically to one built through normal domain
// operations; the given container order is preserved as the load order.
//
// The containers must individually satisfy the ship's invariants: their
// count must not exceed maxContainerCount and their aggregate cargo mass
// must not exceed maxWeightCapacity.
func RestoreShip(
	id kernel.UUID,
	name string,
	maxSpeed float64,
	maxContainerCount int,
	maxWeightCapacity float64,
	containers []container.Loadable,
) (*Ship, error) {
	s, err := NewShip(id, name, maxSpeed, maxContainerCount, maxWeightCapacity)
	if err != nil {
		return nil, err
	}

	for _, c := range containers {
		if err = s.LoadContainer(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// IsEqual compares two ships for equality based on their unique identifiers.
//
// Parameters:
//   - other: The Ship to compare with (can be nil)
func (s *Ship) IsEqual(other *Ship) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks if the Ship was properly constructed using the NewShip constructor.
// The zero value of Ship is invalid and will fail this validation.
func (s *Ship) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

// ID returns the unique identifier of the ship.
func (s *Ship) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable vessel name.
func (s *Ship) Name() string {
	return s.name
}

// MaxSpeed returns the vessel's top speed in knots.
func (s *Ship) MaxSpeed() float64 {
	return s.maxSpeed
}

// MaxContainerCount returns the number of container slots on board.
func (s *Ship) MaxContainerCount() int {
	return s.maxContainerCount
}

// MaxWeightCapacity returns the ceiling on the aggregate cargo mass.
func (s *Ship) MaxWeightCapacity() float64 {
	return s.maxWeightCapacity
}

// Containers returns the on-board container references in load order.
// The returned slice is a copy to prevent external modification of the
// collection; the referenced containers themselves are shared.
func (s *Ship) Containers() []container.Loadable {
	out := make([]container.Loadable, len(s.containers))
	copy(out, s.containers)
	return out
}

// ContainerCount returns how many containers are currently on board.
func (s *Ship) ContainerCount() int {
	return len(s.containers)
}

// TotalCargoMass returns the aggregate cargo mass across all containers
// currently on board. The tare weight of the containers is not included.
func (s *Ship) TotalCargoMass() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.CargoMass()
	}
	return total
}

// FreeWeightCapacity returns how much additional cargo mass the ship can
// take before hitting its weight capacity.
func (s *Ship) FreeWeightCapacity() float64 {
	return s.maxWeightCapacity - s.TotalCargoMass()
}

// LoadContainer accepts a container onto the ship after both fleet-level
// checks pass. The checks run before any mutation: on failure the collection
// is exactly as it was (check-then-commit, no partial state).
//
// Parameters:
//   - c: The container to load (must be a validated container)
//
// Returns:
//   - error: ValueIsRequiredError for a nil container,
//     *CapacityExceededError when all container slots are taken
//     (including the very first load on a zero-capacity ship),
//     *WeightExceededError when the aggregate cargo mass would
//     exceed the weight capacity
//
// Example:
//
//	if err := s.LoadContainer(c); err != nil {
//	    return fmt.Errorf("cannot stow %s: %w", c.SerialNumber(), err)
//	}
func (s *Ship) LoadContainer(c container.Loadable) error {
	if c == nil {
		return errs.NewValueIsRequiredError("container")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if len(s.containers) >= s.maxContainerCount {
		return NewCapacityExceededError(s.id, s.maxContainerCount)
	}

	if total := s.TotalCargoMass(); total+c.CargoMass() > s.maxWeightCapacity {
		return NewWeightExceededError(s.id, total, c.CargoMass(), s.maxWeightCapacity)
	}

	s.containers = append(s.containers, c)
	return nil
}

// RemoveContainer removes the first reference matching c from the collection.
// Removing a container that is not on board is a silent no-op; the container
// itself is never destroyed, only dereferenced.
func (s *Ship) RemoveContainer(c container.Loadable) {
	for i, onBoard := range s.containers {
		if onBoard == c {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			return
		}
	}
}

// UnloadContainer finds the first container whose serial number matches,
// removes it from the collection, and returns it. When no container matches
// the serial number, nil is returned and the collection is unchanged; an
// unknown serial number is a non-error "not found" outcome, not a failure.
//
// Example:
//
//	serial, _ := kernel.NewSerialNumber("KON-L-2")
//	if c := s.UnloadContainer(serial); c != nil {
//	    // c left the ship but keeps existing
//	}
func (s *Ship) UnloadContainer(serialNumber kernel.SerialNumber) container.Loadable {
	for i, onBoard := range s.containers {
		if onBoard.SerialNumber().IsEqual(serialNumber) {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			return onBoard
		}
	}
	return nil
}

// FindContainer returns the first on-board container whose serial number
// matches, without removing it. Returns nil when no container matches.
func (s *Ship) FindContainer(serialNumber kernel.SerialNumber) container.Loadable {
	for _, onBoard := range s.containers {
		if onBoard.SerialNumber().IsEqual(serialNumber) {
			return onBoard
		}
	}
	return nil
}

func (s *Ship) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Ship) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	s.name = name
	return nil
}

func (s *Ship) setMaxSpeed(maxSpeed float64) error {
	if maxSpeed <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxSpeed is invalid",
			fmt.Errorf("%g is not greater than 0", maxSpeed),
		)
	}

	s.maxSpeed = maxSpeed
	return nil
}

// setMaxContainerCount accepts zero: a zero-capacity ship is legal and must
// reject the very first load through the regular capacity check.
func (s *Ship) setMaxContainerCount(maxContainerCount int) error {
	if maxContainerCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxContainerCount is invalid",
			fmt.Errorf("%d is less than 0", maxContainerCount),
		)
	}

	s.maxContainerCount = maxContainerCount
	return nil
}

func (s *Ship) setMaxWeightCapacity(maxWeightCapacity float64) error {
	if maxWeightCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeightCapacity is invalid",
			fmt.Errorf("%g is less than 0", maxWeightCapacity),
		)
	}

	s.maxWeightCapacity = maxWeightCapacity
	return nil
}
