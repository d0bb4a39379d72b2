package ports

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"
)

// QueueRepository defines the persistence contract for dock queue entries.
// Ordering is always priority descending, then arrival time ascending.
type QueueRepository interface {
	// Add persists a new queue entry.
	Add(ctx context.Context, aggregate *queue.QueueEntry) error

	// Update persists changes to an existing queue entry.
	Update(ctx context.Context, aggregate *queue.QueueEntry) error

	// Get retrieves a queue entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*queue.QueueEntry, error)

	// GetNextWaiting retrieves the highest-priority waiting entry at a
	// warehouse, earliest arrival winning ties. Returns ObjectNotFound when
	// the queue is empty.
	GetNextWaiting(ctx context.Context, warehouseID kernel.UUID) (*queue.QueueEntry, error)

	// GetWaitingByShipment retrieves the waiting entry for a
	// (warehouse, shipment) pair, if one exists. Used for the
	// duplicate-enqueue check.
	GetWaitingByShipment(ctx context.Context, warehouseID, shipmentID kernel.UUID) (*queue.QueueEntry, error)

	// GetAllByWarehouse retrieves a warehouse's entries in queue order,
	// optionally filtered by status (pass nil for all).
	GetAllByWarehouse(ctx context.Context, warehouseID kernel.UUID, status *queue.Status) ([]*queue.QueueEntry, error)

	// GetLoadingByWarehouse retrieves the entries currently occupying a
	// warehouse's dock.
	GetLoadingByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*queue.QueueEntry, error)
}
