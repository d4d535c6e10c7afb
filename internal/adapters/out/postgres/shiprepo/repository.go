package shiprepo

import (
	"context"
	"errors"

	"stowage/internal/adapters/out/postgres/containerrepo"
	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/ship"
	"stowage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipRepository implements ShipRepository using GORM.
type GormShipRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	notifier container.HazardNotifier
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipRepository creates a new GORM ship repository.
// The notifier is wired into restored hazard-capable containers on board.
func NewGormShipRepository(db *gorm.DB, tracker aggregateTracker, notifier container.HazardNotifier) *GormShipRepository {
	return &GormShipRepository{
		db:       db,
		tracker:  tracker,
		notifier: notifier,
	}
}

// Add saves a new ship to the database.
func (r *GormShipRepository) Add(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing ship to the database. Containers that left the
// ship since the last persist are detached first so their rows return to
// the off-ship state instead of dangling on the old assignment.
func (r *GormShipRepository) Update(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.detachLeftContainers(ctx, dto); err != nil {
		return err
	}

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// detachLeftContainers clears the ship assignment of containers that are
// persisted as on board but no longer appear in the aggregate's collection.
func (r *GormShipRepository) detachLeftContainers(ctx context.Context, dto ShipDTO) error {
	query := r.db.WithContext(ctx).
		Model(&containerrepo.ContainerDTO{}).
		Where("ship_id = ?", dto.ID)

	if len(dto.Containers) > 0 {
		serials := make([]string, 0, len(dto.Containers))
		for _, c := range dto.Containers {
			serials = append(serials, c.SerialNumber)
		}
		query = query.Where("serial_number NOT IN ?", serials)
	}

	return query.Updates(map[string]any{"ship_id": nil, "position": 0}).Error
}

// Get retrieves a ship by ID with its containers in stowage order.
func (r *GormShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipDTO
	if err := r.db.WithContext(ctx).
		Preload("Containers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ship", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.notifier)
}

// GetAll retrieves every ship in the fleet with its containers in stowage
// order, sorted by name.
func (r *GormShipRepository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	var dtos []ShipDTO
	if err := r.db.WithContext(ctx).
		Preload("Containers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	ships := make([]*ship.Ship, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto, r.notifier)
		if err != nil {
			return nil, err
		}
		ships = append(ships, s)
	}

	return ships, nil
}
