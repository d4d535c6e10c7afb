// Package containerrepo provides data transfer objects and mapping functions for container persistence.
// All container kinds share one table with a kind discriminator column, so the
// concrete loading rules survive a round trip through storage.
package containerrepo

import (
	"fmt"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"

	"github.com/google/uuid"
)

// ContainerDTO represents the database structure for persisting containers.
// Kind-specific attributes occupy nullable-style columns that are only
// meaningful for their kind; ShipID is set while the container is on board
// and Position preserves the stowage order within a ship.
type ContainerDTO struct {
	SerialNumber        string     `gorm:"type:varchar(64);primaryKey"`
	Kind                string     `gorm:"type:varchar(16);not null"`
	CargoMass           float64    `gorm:"type:double precision;not null"`
	Height              float64    `gorm:"type:double precision;not null"`
	TareWeight          float64    `gorm:"type:double precision;not null"`
	Depth               float64    `gorm:"type:double precision;not null"`
	MaximumPayload      float64    `gorm:"type:double precision;not null"`
	IsHazardous         bool       `gorm:"type:boolean;not null;default:false"`
	Pressure            float64    `gorm:"type:double precision;not null;default:0"`
	ProductType         string     `gorm:"type:varchar(255)"`
	RequiredTemperature float64    `gorm:"type:double precision;not null;default:0"`
	ShipID              *uuid.UUID `gorm:"type:uuid;index"`
	Position            int        `gorm:"type:int;not null;default:0"`
}

// TableName specifies the database table name for container entities.
// Overrides GORM's default naming convention to use "containers" instead of "container_dtos".
func (ContainerDTO) TableName() string {
	return "containers"
}

// FromDomain converts a container to its database representation.
// Ship assignment is owned by the ship aggregate, so ShipID and Position
// are left zero here; the ship repository fills them in when persisting
// a ship's container collection.
func FromDomain(c container.Loadable) ContainerDTO {
	dto := ContainerDTO{
		SerialNumber:   c.SerialNumber().String(),
		Kind:           container.KindOf(c).String(),
		CargoMass:      c.CargoMass(),
		MaximumPayload: c.MaximumPayload(),
	}

	switch concrete := c.(type) {
	case *container.LiquidContainer:
		dto.Height = concrete.Height()
		dto.TareWeight = concrete.TareWeight()
		dto.Depth = concrete.Depth()
		dto.IsHazardous = concrete.IsHazardous()
	case *container.GasContainer:
		dto.Height = concrete.Height()
		dto.TareWeight = concrete.TareWeight()
		dto.Depth = concrete.Depth()
		dto.Pressure = concrete.Pressure()
	case *container.RefrigeratedContainer:
		dto.Height = concrete.Height()
		dto.TareWeight = concrete.TareWeight()
		dto.Depth = concrete.Depth()
		dto.ProductType = concrete.ProductType()
		dto.RequiredTemperature = concrete.RequiredTemperature()
	case *container.Container:
		dto.Height = concrete.Height()
		dto.TareWeight = concrete.TareWeight()
		dto.Depth = concrete.Depth()
	}

	return dto
}

// ToDomain converts a database DTO to the concrete container kind named by
// the discriminator column. Hazard-capable kinds are rewired to the given
// notifier so their warnings reach the outside world again after a restore.
func ToDomain(dto ContainerDTO, notifier container.HazardNotifier) (container.Loadable, error) {
	serialNumber, err := kernel.NewSerialNumber(dto.SerialNumber)
	if err != nil {
		return nil, err
	}

	switch dto.Kind {
	case container.KindLiquid.String():
		return container.NewLiquidContainer(
			serialNumber, dto.CargoMass, dto.Height, dto.TareWeight,
			dto.Depth, dto.MaximumPayload, dto.IsHazardous, notifier)
	case container.KindGas.String():
		return container.NewGasContainer(
			serialNumber, dto.CargoMass, dto.Height, dto.TareWeight,
			dto.Depth, dto.MaximumPayload, dto.Pressure, notifier)
	case container.KindRefrigerated.String():
		return container.NewRefrigeratedContainer(
			serialNumber, dto.CargoMass, dto.Height, dto.TareWeight,
			dto.Depth, dto.MaximumPayload, dto.ProductType, dto.RequiredTemperature)
	case container.KindBasic.String():
		return container.NewContainer(
			serialNumber, dto.CargoMass, dto.Height, dto.TareWeight,
			dto.Depth, dto.MaximumPayload)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"kind is invalid",
			fmt.Errorf("%q is not a valid container kind", dto.Kind),
		)
	}
}
