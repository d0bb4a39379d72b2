package commands

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
)

// AssignDriverCommandHandler puts a driver on a shipment. Assignment is the
// only operation that demands the driver be available; once assigned the
// driver goes on route.
type AssignDriverCommandHandler struct {
	uowFactory AssignDriverUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory AssignDriverUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment. Shipment and driver updates land in one
// transaction.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	driverRepo := uow.DriverRepository()
	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = drv.EnsureAvailable(); err != nil {
		return err
	}
	if err = shp.AssignDriver(cmd.DriverID()); err != nil {
		return err
	}
	if err = drv.SetStatus(driver.StatusOnRoute); err != nil {
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
