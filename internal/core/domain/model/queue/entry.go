package queue

import (
	"errors"
	"fmt"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// ErrQueueEntryIsNotConstructed is returned when a QueueEntry instance was not
// created through NewQueueEntry or RestoreQueueEntry.
var ErrQueueEntryIsNotConstructed = errors.New(
	"QueueEntry must be created via NewQueueEntry constructor")

// DefaultEstimatedLoadingMinutes is used when the caller supplies no estimate.
const DefaultEstimatedLoadingMinutes = 60

// QueueEntry is one shipment's claim on a warehouse loading dock. The entry
// references warehouse, shipment, and driver by id only; flipping their
// statuses in step with the entry is the handlers' concern, inside the same
// transaction.
type QueueEntry struct {
	id          kernel.UUID
	warehouseID kernel.UUID
	shipmentID  kernel.UUID
	driverID    kernel.UUID

	status   Status
	priority int

	arrivalTime             time.Time
	startLoadingTime        *time.Time
	finishLoadingTime       *time.Time
	estimatedLoadingMinutes int

	isConstructed bool
}

// NewQueueEntry creates a waiting entry with the given arrival time.
// A non-positive estimate falls back to DefaultEstimatedLoadingMinutes.
func NewQueueEntry(
	id, warehouseID, shipmentID, driverID kernel.UUID,
	priority int,
	estimatedLoadingMinutes int,
	arrivalTime time.Time,
) (*QueueEntry, error) {
	if err := errors.Join(
		id.Validate(),
		warehouseID.Validate(),
		shipmentID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}
	if priority < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is negative", priority))
	}
	if estimatedLoadingMinutes <= 0 {
		estimatedLoadingMinutes = DefaultEstimatedLoadingMinutes
	}

	return &QueueEntry{
		id:                      id,
		warehouseID:             warehouseID,
		shipmentID:              shipmentID,
		driverID:                driverID,
		status:                  StatusWaiting,
		priority:                priority,
		arrivalTime:             arrivalTime,
		estimatedLoadingMinutes: estimatedLoadingMinutes,
		isConstructed:           true,
	}, nil
}

// RestoreQueueEntry reconstructs a queue entry from persistence.
func RestoreQueueEntry(
	id, warehouseID, shipmentID, driverID kernel.UUID,
	status Status,
	priority int,
	arrivalTime time.Time,
	startLoadingTime, finishLoadingTime *time.Time,
	estimatedLoadingMinutes int,
) (*QueueEntry, error) {
	entry, err := NewQueueEntry(id, warehouseID, shipmentID, driverID,
		priority, estimatedLoadingMinutes, arrivalTime)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	entry.status = status
	entry.startLoadingTime = startLoadingTime
	entry.finishLoadingTime = finishLoadingTime
	return entry, nil
}

// Validate ensures the entry was created through a constructor.
func (e *QueueEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrQueueEntryIsNotConstructed
	}
	return nil
}

// StartLoading admits the entry to the dock. Legal only from waiting.
func (e *QueueEntry) StartLoading(now time.Time) error {
	if e.status != StatusWaiting {
		return errs.NewInvalidStateError("queue entry", e.id.String(),
			e.status.String(), "start loading")
	}

	e.status = StatusLoading
	e.startLoadingTime = &now
	return nil
}

// FinishLoading releases the dock. Legal only from loading.
func (e *QueueEntry) FinishLoading(now time.Time) error {
	if e.status != StatusLoading {
		return errs.NewInvalidStateError("queue entry", e.id.String(),
			e.status.String(), "finish loading")
	}

	e.status = StatusCompleted
	e.finishLoadingTime = &now
	return nil
}

// Cancel removes the entry from the queue. Illegal from terminal states.
func (e *QueueEntry) Cancel() error {
	if e.status.IsTerminal() {
		return errs.NewInvalidStateError("queue entry", e.id.String(),
			e.status.String(), "cancel")
	}

	e.status = StatusCancelled
	return nil
}

// Reprioritize overwrites the priority. No state restriction.
func (e *QueueEntry) Reprioritize(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is negative", priority))
	}

	e.priority = priority
	return nil
}

// IsEqual compares two entries by their unique identifiers.
func (e *QueueEntry) IsEqual(other *QueueEntry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (e *QueueEntry) ID() kernel.UUID {
	return e.id
}

// WarehouseID returns the warehouse whose dock is claimed.
func (e *QueueEntry) WarehouseID() kernel.UUID {
	return e.warehouseID
}

// ShipmentID returns the shipment waiting to be loaded.
func (e *QueueEntry) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// DriverID returns the driver who will load at the dock.
func (e *QueueEntry) DriverID() kernel.UUID {
	return e.driverID
}

// Status returns the entry's current workflow state.
func (e *QueueEntry) Status() Status {
	return e.status
}

// Priority returns the entry's priority. Higher is served first.
func (e *QueueEntry) Priority() int {
	return e.priority
}

// ArrivalTime returns when the entry joined the queue.
func (e *QueueEntry) ArrivalTime() time.Time {
	return e.arrivalTime
}

// StartLoadingTime returns when loading started, if it has.
func (e *QueueEntry) StartLoadingTime() *time.Time {
	return e.startLoadingTime
}

// FinishLoadingTime returns when loading finished, if it has.
func (e *QueueEntry) FinishLoadingTime() *time.Time {
	return e.finishLoadingTime
}

// EstimatedLoadingMinutes returns the caller-supplied loading estimate.
func (e *QueueEntry) EstimatedLoadingMinutes() int {
	return e.estimatedLoadingMinutes
}
