package commands

import (
	"context"
	"time"
)

// UpdateLegStatusCommandHandler advances one leg of a multi-leg shipment.
// Completing a leg triggers the cascade inside the aggregate: the next
// pending leg departs, or the shipment as a whole delivers. The whole cascade
// is persisted with one update.
type UpdateLegStatusCommandHandler struct {
	uowFactory ShipmentStatusUoWFactory
}

// NewUpdateLegStatusCommandHandler creates a handler for leg transitions.
func NewUpdateLegStatusCommandHandler(uowFactory ShipmentStatusUoWFactory) UpdateLegStatusCommandHandler {
	return UpdateLegStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the leg transition command.
func (h *UpdateLegStatusCommandHandler) Handle(ctx context.Context, cmd UpdateLegStatusCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	shp, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = shp.ChangeLegStatus(cmd.Sequence(), cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
