package commands

import (
	"context"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
)

// FinishLoadingCommandHandler completes a loading queue entry: the entry
// flips to completed with its finish time stamped, the shipment departs as
// in transit, and the driver goes on route. One transaction covers all three.
type FinishLoadingCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewFinishLoadingCommandHandler creates a handler for loading completion.
func NewFinishLoadingCommandHandler(uowFactory QueueUoWFactory) FinishLoadingCommandHandler {
	return FinishLoadingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *FinishLoadingCommandHandler) Handle(ctx context.Context, cmd FinishLoadingCommand) error {
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
	if err = entry.FinishLoading(now); err != nil {
		return err
	}

	shipmentRepo := uow.ShipmentRepository()
	shp, err := shipmentRepo.Get(ctx, entry.ShipmentID())
	if err != nil {
		return err
	}
	if err = shp.ChangeStatus(shipment.StatusInTransit, now); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	drv, err := driverRepo.Get(ctx, entry.DriverID())
	if err != nil {
		return err
	}
	if err = drv.SetStatus(driver.StatusOnRoute); err != nil {
		return err
	}

	if err = queueRepo.Update(ctx, entry); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}
	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
