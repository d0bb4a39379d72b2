package commands

import (
	"context"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
)

// CancelQueueEntryCommandHandler cancels a waiting or loading queue entry.
// If the shipment is still queued it reverts to pending so it can be
// enqueued again later.
type CancelQueueEntryCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewCancelQueueEntryCommandHandler creates a handler for queue cancellation.
func NewCancelQueueEntryCommandHandler(uowFactory QueueUoWFactory) CancelQueueEntryCommandHandler {
	return CancelQueueEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelQueueEntryCommandHandler) Handle(ctx context.Context, cmd CancelQueueEntryCommand) error {
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

	queueRepo := uow.QueueRepository()
	entry, err := queueRepo.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	if err = entry.Cancel(); err != nil {
		return err
	}
	if err = queueRepo.Update(ctx, entry); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	shp, err := shipmentRepo.Get(ctx, entry.ShipmentID())
	if err != nil {
		return err
	}
	if shp.Status() == shipment.StatusQueued {
		if err = shp.ChangeStatus(shipment.StatusPending, time.Now().UTC()); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, shp); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
