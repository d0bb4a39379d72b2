package commands

import (
	"context"
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// EnqueueShipmentCommandHandler adds a shipment to a warehouse's dock queue
// and flips the shipment to queued, atomically. A second waiting entry for
// the same (warehouse, shipment) pair is rejected as a duplicate.
type EnqueueShipmentCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewEnqueueShipmentCommandHandler creates a handler for enqueueing.
func NewEnqueueShipmentCommandHandler(uowFactory QueueUoWFactory) EnqueueShipmentCommandHandler {
	return EnqueueShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the enqueue command.
func (h *EnqueueShipmentCommandHandler) Handle(ctx context.Context, cmd EnqueueShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseID()); err != nil {
		return err
	}
	if _, err := uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	queueRepo := uow.QueueRepository()
	existing, err := queueRepo.GetWaitingByShipment(ctx, cmd.WarehouseID(), cmd.ShipmentID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewDuplicateEntryError("queue entry",
			cmd.WarehouseID().String()+"/"+cmd.ShipmentID().String())
	}

	now := time.Now().UTC()
	entry, err := queue.NewQueueEntry(cmd.EntryID(), cmd.WarehouseID(),
		cmd.ShipmentID(), cmd.DriverID(), cmd.Priority(),
		cmd.EstimatedLoadingMinutes(), now)
	if err != nil {
		return err
	}

	if err = shp.ChangeStatus(shipment.StatusQueued, now); err != nil {
		return err
	}

	if err = queueRepo.Add(ctx, entry); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
