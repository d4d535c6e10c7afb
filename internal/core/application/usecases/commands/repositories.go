// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"stowage/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipRepoFactory provides access to ship repository within a transaction.
	ShipRepoFactory interface {
		ShipRepository() ports.ShipRepository
	}

	// ContainerRepoFactory provides access to container repository within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// ShipUoW manages transactions for ship-only operations.
	// Used when commands only modify ship aggregates.
	ShipUoW interface {
		TxManager
		ShipRepoFactory
	}

	// ShipUoWFactory creates new ship unit of work instances.
	ShipUoWFactory interface {
		Create() ShipUoW
	}

	// ContainerUoW manages transactions for container-only operations.
	// Used when commands only modify containers.
	ContainerUoW interface {
		TxManager
		ContainerRepoFactory
	}

	// ContainerUoWFactory creates new container unit of work instances.
	ContainerUoWFactory interface {
		Create() ContainerUoW
	}

	// UoW manages transactions across both ship and container aggregates.
	// Used for commands that move containers on and off ships.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipRepo := uow.ShipRepository()
	//   containerRepo := uow.ContainerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ShipRepoFactory
		ContainerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
