package commands

import (
	"context"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
)

// StartLoadingCommandHandler admits a waiting queue entry to the dock: the
// entry flips to loading with its start time stamped and the shipment flips
// to loading in the same transaction.
type StartLoadingCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewStartLoadingCommandHandler creates a handler for dock admission.
func NewStartLoadingCommandHandler(uowFactory QueueUoWFactory) StartLoadingCommandHandler {
	return StartLoadingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the admission command.
func (h *StartLoadingCommandHandler) Handle(ctx context.Context, cmd StartLoadingCommand) error {
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

	now := time.Now().UTC()
	if err = entry.StartLoading(now); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	shp, err := shipmentRepo.Get(ctx, entry.ShipmentID())
	if err != nil {
		return err
	}
	if err = shp.ChangeStatus(shipment.StatusLoading, now); err != nil {
		return err
	}

	if err = queueRepo.Update(ctx, entry); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
