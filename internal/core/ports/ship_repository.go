// Package ports defines repository interfaces for the stowage domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/ship"
)

// ShipRepository defines the persistence contract for ship aggregates.
// Provides methods for storing, retrieving, and querying ship entities
// with their complete state including the containers on board.
type ShipRepository interface {
	// Add persists a new ship aggregate to storage.
	// The ship must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *ship.Ship) error

	// Update persists changes to an existing ship aggregate, including
	// its current container collection and stowage order.
	Update(ctx context.Context, aggregate *ship.Ship) error

	// Get retrieves a ship aggregate by its unique identifier.
	// Returns the complete ship with its on-board containers in load order.
	Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error)

	// GetAll retrieves every ship in the fleet with its containers.
	// Used by stowage planning to pick the best ship for a container.
	GetAll(ctx context.Context) ([]*ship.Ship, error)
}
