package queries

import (
	"context"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShipmentsQueryHandler retrieves shipment summaries from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment list queries.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query. Results are newest first; both filters are
// optional and combine with AND.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			tracking_number,
			status,
			origin_warehouse_id,
			destination_warehouse_id,
			driver_id,
			total_value,
			total_weight,
			is_multi_leg,
			created_at
		FROM shipments
		WHERE 1=1`
	args := make([]any, 0, 2)

	if status := query.Status(); status != nil {
		sql += ` AND status = ?`
		args = append(args, *status)
	}
	if driverID := query.DriverID(); driverID != nil {
		sql += ` AND driver_id = ?`
		args = append(args, driverID.String())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetShipmentsQueryResponse, 0)
	for rows.Next() {
		var resp GetShipmentsQueryResponse
		var id uuid.UUID
		var originID uuid.UUID
		var destinationID, driverID uuid.NullUUID
		var status int
		var totalValue, totalWeight decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&status,
			&originID,
			&destinationID,
			&driverID,
			&totalValue,
			&totalWeight,
			&resp.IsMultiLeg,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.OriginID, err = kernel.UUIDFromBytes(originID[:])
		if err != nil {
			return nil, err
		}
		resp.DestinationID, err = optionalUUID(destinationID)
		if err != nil {
			return nil, err
		}
		resp.DriverID, err = optionalUUID(driverID)
		if err != nil {
			return nil, err
		}

		resp.Status = shipment.Status(status)
		resp.TotalValue = totalValue
		resp.TotalWeight = totalWeight
		resp.CreatedAt = createdAt
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
