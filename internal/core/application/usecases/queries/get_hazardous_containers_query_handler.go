package queries

import (
	"context"

	"stowage/internal/core/domain/model/container"
	"stowage/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetHazardousContainersQueryHandler retrieves the hazardous container
// read model from the database. Uses direct SQL queries for optimal read
// performance in the CQRS pattern.
type GetHazardousContainersQueryHandler struct {
	db *gorm.DB
}

// NewGetHazardousContainersQueryHandler creates a handler for hazardous
// container queries. Requires a GORM database connection for query execution.
func NewGetHazardousContainersQueryHandler(db *gorm.DB) GetHazardousContainersQueryHandler {
	return GetHazardousContainersQueryHandler{db: db}
}

// Handle executes the query to retrieve hazardous liquid containers whose
// cargo mass exceeds half their maximum payload, sorted by serial number.
func (h GetHazardousContainersQueryHandler) Handle(
	ctx context.Context,
	query GetHazardousContainersQuery,
) ([]GetHazardousContainersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	containers := make([]GetHazardousContainersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			serial_number,
			cargo_mass,
			maximum_payload
		FROM containers
		WHERE kind = ?
		  AND is_hazardous
		  AND cargo_mass > maximum_payload / 2
		ORDER BY serial_number
	`, container.KindLiquid.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var hazardous GetHazardousContainersQueryResponse
		var serial string

		err = rows.Scan(
			&serial,
			&hazardous.CargoMass,
			&hazardous.MaximumPayload,
		)
		if err != nil {
			return nil, err
		}

		serialNumber, serialErr := kernel.NewSerialNumber(serial)
		if serialErr != nil {
			return nil, serialErr
		}
		hazardous.SerialNumber = serialNumber

		containers = append(containers, hazardous)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return containers, nil
}
