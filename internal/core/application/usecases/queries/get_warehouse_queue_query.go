package queries

import (
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrGetWarehouseQueueQueryIsNotConstructed = errors.New(
	"GetWarehouseQueueQuery must be created via NewGetWarehouseQueueQuery constructor",
)

// GetWarehouseQueueQuery retrieves a warehouse's dock queue in loading order:
// highest priority first, earliest arrival breaking ties. An optional status
// filter narrows the listing.
type GetWarehouseQueueQuery struct {
	warehouseID kernel.UUID
	status      *queue.Status

	guard guard.ConstructorGuard
}

// NewGetWarehouseQueueQuery creates a query for one warehouse's queue.
func NewGetWarehouseQueueQuery(warehouseID kernel.UUID, status *queue.Status) (GetWarehouseQueueQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetWarehouseQueueQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetWarehouseQueueQuery{}, err
		}
	}

	return GetWarehouseQueueQuery{
		warehouseID: warehouseID,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWarehouseQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseQueueQueryIsNotConstructed)
}

// WarehouseID returns the warehouse whose queue is listed.
func (q GetWarehouseQueueQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// Status returns the optional status filter.
func (q GetWarehouseQueueQuery) Status() *queue.Status {
	return q.status
}

// QueueEntryResponse is one dock queue row.
type QueueEntryResponse struct {
	ID                      kernel.UUID
	WarehouseID             kernel.UUID
	ShipmentID              kernel.UUID
	DriverID                kernel.UUID
	Status                  queue.Status
	Priority                int
	ArrivalTime             time.Time
	StartLoadingTime        *time.Time
	FinishLoadingTime       *time.Time
	EstimatedLoadingMinutes int
}
