package commands

import (
	"context"
	"time"
)

// UpdateShipmentStatusCommandHandler drives a shipment through its lifecycle
// state machine, including the side effects of entering a state (timestamps,
// first-leg departure on multi-leg shipments).
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentStatusUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status transitions.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentStatusUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	now := time.Now().UTC()
	if cmd.Force() {
		err = shp.ForceStatus(cmd.Status(), now)
	} else {
		err = shp.ChangeStatus(cmd.Status(), now)
	}
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
