package queries

import (
	"errors"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/guard"
)

var ErrGetHazardousContainersQueryIsNotConstructed = errors.New(
	"GetHazardousContainersQuery must be created via NewGetHazardousContainersQuery constructor",
)

// GetHazardousContainersQuery retrieves hazardous liquid containers whose
// cargo mass has crossed the hazard warning threshold of half the maximum
// payload. Used by the periodic hazard sweep to re-raise warnings for
// cargo that remains in the warning zone.
type GetHazardousContainersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetHazardousContainersQuery creates a query for threshold-crossing
// hazardous containers.
func NewGetHazardousContainersQuery() GetHazardousContainersQuery {
	return GetHazardousContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetHazardousContainersQueryIsNotConstructed if validation fails.
func (q GetHazardousContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetHazardousContainersQueryIsNotConstructed)
}

// GetHazardousContainersQueryResponse represents one hazardous container
// in the warning zone.
type GetHazardousContainersQueryResponse struct {
	SerialNumber   kernel.SerialNumber
	CargoMass      float64
	MaximumPayload float64
}
