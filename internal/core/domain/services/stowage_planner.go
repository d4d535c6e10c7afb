package services

import (
	"errors"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/ship"
)

// ErrShipNotFound is returned when no suitable ship is available for a
// container. This occurs when either no ships are provided or none of the
// provided ships can take the container without violating its capacity
// constraints.
var ErrShipNotFound = errors.New("ship not found")

// StowagePlanner is a domain service responsible for finding the optimal ship
// for a container and loading it there.
//
// Key responsibilities:
//   - Validating containers before stowage
//   - Selecting the ship with the most spare weight capacity
//   - Ensuring the load happens on the selected ship atomically
//
// Business rules:
//   - Containers must be valid before stowage
//   - Ships must have a free container slot and enough weight headroom
//   - Selection prioritizes maximum free weight capacity
//
// Example usage:
//
//	planner := services.NewStowagePlanner()
//	ships := []*ship.Ship{aurora, borealis}
//
//	chosen, err := planner.Plan(c, ships)
//	if errors.Is(err, services.ErrShipNotFound) {
//	    // No ship in the fleet can take this container
//	    return
//	}
type StowagePlanner struct{}

// NewStowagePlanner creates a new StowagePlanner instance.
func NewStowagePlanner() StowagePlanner {
	return StowagePlanner{}
}

// Plan finds the best ship for the given container and loads the container
// onto it.
//
// Parameters:
//   - c: The container to stow (must be a validated container)
//   - ships: Slice of candidate ships to consider
//
// Returns:
//   - *ship.Ship: The ship the container was loaded onto
//   - error: ErrShipNotFound if no suitable ship exists, or validation errors
//
// Selection algorithm:
//   - Validates the container and each ship
//   - Skips ships without a free container slot or enough weight headroom
//   - Selects the ship with the largest free weight capacity
//   - Returns the first such ship in case of ties
func (p StowagePlanner) Plan(c container.Loadable, ships []*ship.Ship) (*ship.Ship, error) {
	if c == nil {
		return nil, ErrShipNotFound
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	bestShip, err := p.findBestShip(c, ships)
	if err != nil {
		return nil, err
	}

	if err = bestShip.LoadContainer(c); err != nil {
		return nil, err
	}

	return bestShip, nil
}

func (p StowagePlanner) findBestShip(c container.Loadable, ships []*ship.Ship) (*ship.Ship, error) {
	var (
		bestShip     *ship.Ship
		bestHeadroom = -1.0
	)

	for _, s := range ships {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		if s.ContainerCount() >= s.MaxContainerCount() {
			continue
		}

		headroom := s.FreeWeightCapacity()
		if headroom < c.CargoMass() {
			continue
		}

		if headroom > bestHeadroom {
			bestHeadroom = headroom
			bestShip = s
		}
	}

	if bestShip == nil {
		return nil, ErrShipNotFound
	}

	return bestShip, nil
}
