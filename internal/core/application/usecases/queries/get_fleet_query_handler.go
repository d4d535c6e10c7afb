package queries

import (
	"context"

	"stowage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFleetQueryHandler retrieves the fleet read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetFleetQueryHandler(db)
//	query := NewGetFleetQuery()
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get fleet: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Fleet of %d ships\n", len(fleet))
type GetFleetQueryHandler struct {
	db *gorm.DB
}

// NewGetFleetQueryHandler creates a handler for fleet retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetFleetQueryHandler(db *gorm.DB) GetFleetQueryHandler {
	return GetFleetQueryHandler{db: db}
}

// Handle executes the query to retrieve all ships with their utilization.
// Returns a slice of ship read models sorted by name. Container count and
// total cargo mass are aggregated over the containers on board.
func (h GetFleetQueryHandler) Handle(
	ctx context.Context,
	query GetFleetQuery,
) ([]GetFleetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	fleet := make([]GetFleetQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.max_container_count,
			s.max_weight_capacity,
			COUNT(c.serial_number),
			COALESCE(SUM(c.cargo_mass), 0)
		FROM ships s
		LEFT JOIN containers c ON c.ship_id = s.id
		GROUP BY s.id, s.name, s.max_container_count, s.max_weight_capacity
		ORDER BY s.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var vessel GetFleetQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&vessel.Name,
			&vessel.MaxContainerCount,
			&vessel.MaxWeightCapacity,
			&vessel.ContainerCount,
			&vessel.TotalCargoMass,
		)
		if err != nil {
			return nil, err
		}

		shipID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		vessel.ID = shipID

		fleet = append(fleet, vessel)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fleet, nil
}
