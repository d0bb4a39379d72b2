package queries

import (
	"context"
	"database/sql"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWarehouseQueueQueryHandler lists a warehouse's dock queue.
type GetWarehouseQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseQueueQueryHandler creates a handler for queue listings.
func NewGetWarehouseQueueQueryHandler(db *gorm.DB) GetWarehouseQueueQueryHandler {
	return GetWarehouseQueueQueryHandler{db: db}
}

// Handle executes the listing in loading order.
func (h GetWarehouseQueueQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseQueueQuery,
) ([]QueueEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			warehouse_id,
			shipment_id,
			driver_id,
			status,
			priority,
			arrival_time,
			start_loading_time,
			finish_loading_time,
			estimated_loading_minutes
		FROM queue_entries
		WHERE warehouse_id = ?`
	args := []any{query.WarehouseID().String()}

	if status := query.Status(); status != nil {
		sqlText += ` AND status = ?`
		args = append(args, *status)
	}
	sqlText += ` ORDER BY priority DESC, arrival_time ASC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]QueueEntryResponse, 0)
	for rows.Next() {
		entry, scanErr := scanQueueEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanQueueEntry(rows *sql.Rows) (QueueEntryResponse, error) {
	var entry QueueEntryResponse
	var id, warehouseID, shipmentID, driverID uuid.UUID
	var status int
	var startLoading, finishLoading sql.NullTime

	err := rows.Scan(
		&id,
		&warehouseID,
		&shipmentID,
		&driverID,
		&status,
		&entry.Priority,
		&entry.ArrivalTime,
		&startLoading,
		&finishLoading,
		&entry.EstimatedLoadingMinutes,
	)
	if err != nil {
		return QueueEntryResponse{}, err
	}

	entry.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return QueueEntryResponse{}, err
	}
	entry.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:])
	if err != nil {
		return QueueEntryResponse{}, err
	}
	entry.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return QueueEntryResponse{}, err
	}
	entry.DriverID, err = kernel.UUIDFromBytes(driverID[:])
	if err != nil {
		return QueueEntryResponse{}, err
	}

	entry.Status = queue.Status(status)
	entry.StartLoadingTime = optionalTime(startLoading)
	entry.FinishLoadingTime = optionalTime(finishLoading)
	return entry, nil
}
