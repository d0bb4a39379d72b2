package queries

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetNextInQueueQueryHandler retrieves the head of a warehouse's waiting
// queue.
type GetNextInQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetNextInQueueQueryHandler creates a handler for queue head lookups.
func NewGetNextInQueueQueryHandler(db *gorm.DB) GetNextInQueueQueryHandler {
	return GetNextInQueueQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFound when nothing is
// waiting.
func (h GetNextInQueueQueryHandler) Handle(
	ctx context.Context,
	query GetNextInQueueQuery,
) (QueueEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return QueueEntryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE warehouse_id = ? AND status = ?
		ORDER BY priority DESC, arrival_time ASC
		LIMIT 1
	`, query.WarehouseID().String(), queue.StatusWaiting).Rows()
	if err != nil {
		return QueueEntryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return QueueEntryResponse{}, err
		}
		return QueueEntryResponse{}, errs.NewObjectNotFoundError("warehouseID", query.WarehouseID())
	}

	return scanQueueEntry(rows)
}
