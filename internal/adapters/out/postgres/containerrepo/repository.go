package containerrepo

import (
	"context"
	"errors"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContainerRepository implements ContainerRepository using GORM.
type GormContainerRepository struct {
	db       *gorm.DB
	notifier container.HazardNotifier
}

// NewGormContainerRepository creates a new GORM container repository.
// The notifier is wired into restored hazard-capable containers so their
// warnings keep flowing after a round trip through storage.
func NewGormContainerRepository(db *gorm.DB, notifier container.HazardNotifier) *GormContainerRepository {
	return &GormContainerRepository{
		db:       db,
		notifier: notifier,
	}
}

// Add saves a new container to the database. Registered containers start
// off-ship; ship assignment is written by the ship repository.
func (r *GormContainerRepository) Add(ctx context.Context, c container.Loadable) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := FromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update persists the container's cargo mass. Ship assignment and stowage
// position belong to the ship aggregate and are deliberately not touched
// here, so a cargo update cannot detach a container from its ship.
func (r *GormContainerRepository) Update(ctx context.Context, c container.Loadable) error {
	if err := c.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ContainerDTO{}).
		Where("serial_number = ?", c.SerialNumber().String()).
		Update("cargo_mass", c.CargoMass())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("container", c.SerialNumber().String())
	}

	return nil
}

// Get retrieves a container by serial number as its concrete kind.
func (r *GormContainerRepository) Get(ctx context.Context, serialNumber kernel.SerialNumber) (container.Loadable, error) {
	if err := serialNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	if err := r.db.WithContext(ctx).First(&dto, "serial_number = ?", serialNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", serialNumber.String())
		}
		return nil, err
	}

	return ToDomain(dto, r.notifier)
}

// GetAllUnstowed retrieves every container waiting at the dock, sorted by
// serial number.
func (r *GormContainerRepository) GetAllUnstowed(ctx context.Context) ([]container.Loadable, error) {
	var dtos []ContainerDTO
	if err := r.db.WithContext(ctx).
		Where("ship_id IS NULL").
		Order("serial_number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	containers := make([]container.Loadable, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto, r.notifier)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return containers, nil
}
