// Package shiprepo provides data transfer objects and mapping functions for ship persistence.
// This package implements the repository pattern for the ship aggregate, handling
// the conversion between domain entities and database representations.
package shiprepo

import (
	"stowage/internal/adapters/out/postgres/containerrepo"
	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/ship"

	"github.com/google/uuid"
)

// ShipDTO represents the database structure for persisting ship aggregates.
// The containers on board live in the shared containers table and reference
// the ship via ShipID; Position preserves the stowage order.
type ShipDTO struct {
	ID                uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	Name              string                       `gorm:"type:varchar(255);not null"`
	MaxSpeed          float64                      `gorm:"type:double precision;not null"`
	MaxContainerCount int                          `gorm:"type:int;not null"`
	MaxWeightCapacity float64                      `gorm:"type:double precision;not null"`
	Containers        []containerrepo.ContainerDTO `gorm:"foreignKey:ShipID"`
}

// TableName specifies the database table name for ship entities.
// Overrides GORM's default naming convention to use "ships" instead of "ship_dtos".
func (ShipDTO) TableName() string {
	return "ships"
}

// fromDomain converts a ship aggregate to its database representation.
// Each on-board container gets this ship's ID and its index in the load
// order as the stowage position.
func fromDomain(aggregate *ship.Ship) ShipDTO {
	shipID := aggregate.ID().Bytes()
	onBoard := aggregate.Containers()
	containers := make([]containerrepo.ContainerDTO, 0, len(onBoard))

	for position, c := range onBoard {
		dto := containerrepo.FromDomain(c)
		id := shipID
		dto.ShipID = &id
		dto.Position = position
		containers = append(containers, dto)
	}

	return ShipDTO{
		ID:                shipID,
		Name:              aggregate.Name(),
		MaxSpeed:          aggregate.MaxSpeed(),
		MaxContainerCount: aggregate.MaxContainerCount(),
		MaxWeightCapacity: aggregate.MaxWeightCapacity(),
		Containers:        containers,
	}
}

// toDomain converts a database DTO to a ship aggregate.
// Reconstructs the complete aggregate including the on-board containers
// using RestoreShip; the caller must preload Containers in position order.
func toDomain(dto ShipDTO, notifier container.HazardNotifier) (*ship.Ship, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	containers := make([]container.Loadable, 0, len(dto.Containers))
	for _, containerDto := range dto.Containers {
		c, containerErr := containerrepo.ToDomain(containerDto, notifier)
		if containerErr != nil {
			return nil, containerErr
		}
		containers = append(containers, c)
	}

	return ship.RestoreShip(
		id, dto.Name, dto.MaxSpeed, dto.MaxContainerCount, dto.MaxWeightCapacity, containers)
}
