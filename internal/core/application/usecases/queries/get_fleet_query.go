// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var ErrGetFleetQueryIsNotConstructed = errors.New(
	"GetFleetQuery must be created via NewGetFleetQuery constructor",
)

// GetFleetQuery retrieves information about every ship in the fleet.
// Returns ship identities with their capacity parameters and current
// utilization for monitoring and stowage planning.
//
// Example:
//
//	query := NewGetFleetQuery()
//	handler := NewGetFleetQueryHandler(db)
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet: %w", err)
//	}
//
//	for _, vessel := range fleet {
//	    fmt.Printf("%s: %d containers, %.0f kg on board\n",
//	        vessel.Name, vessel.ContainerCount, vessel.TotalCargoMass)
//	}
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetQuery creates a query to retrieve the whole fleet.
// This is a parameterless query that fetches the complete ship list.
func NewGetFleetQuery() GetFleetQuery {
	return GetFleetQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFleetQueryIsNotConstructed if validation fails.
func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// GetFleetQueryResponse represents one ship in the fleet read model.
// Utilization fields are aggregated over the containers on board.
type GetFleetQueryResponse struct {
	ID                kernel.UUID
	Name              string
	MaxContainerCount int
	MaxWeightCapacity float64
	ContainerCount    int
	TotalCargoMass    float64
}
