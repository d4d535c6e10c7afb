package ports

import (
	"context"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for container entities.
// Containers are persisted with their concrete kind so that the type-specific
// loading rules survive a round trip through storage.
type ContainerRepository interface {
	// Add persists a new container to storage.
	// The container must be valid and its serial number must not already
	// exist in the repository.
	Add(ctx context.Context, c container.Loadable) error

	// Update persists changes to an existing container, typically its
	// cargo mass after a load or empty operation.
	Update(ctx context.Context, c container.Loadable) error

	// Get retrieves a container by its serial number. The returned value
	// is the concrete container kind behind the Loadable capability, so
	// loading it dispatches the kind's own rules.
	Get(ctx context.Context, serialNumber kernel.SerialNumber) (container.Loadable, error)

	// GetAllUnstowed retrieves every container that is not on board any ship.
	// Used by stowage planning to find cargo waiting at the dock.
	GetAllUnstowed(ctx context.Context) ([]container.Loadable, error)
}
