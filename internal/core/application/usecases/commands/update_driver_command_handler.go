package commands

import (
	"context"
)

// UpdateDriverCommandHandler applies a partial driver update.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver updates.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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

	driverRepo := uow.DriverRepository()
	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if cmd.PhoneNumber() != nil || cmd.Email() != nil {
		phone := drv.PhoneNumber()
		email := drv.Email()
		if cmd.PhoneNumber() != nil {
			phone = *cmd.PhoneNumber()
		}
		if cmd.Email() != nil {
			email = *cmd.Email()
		}
		drv.SetContact(phone, email)
	}

	if cmd.VehicleType() != nil || cmd.VehicleNumber() != nil {
		vehicleType := drv.VehicleType()
		vehicleNumber := drv.VehicleNumber()
		if cmd.VehicleType() != nil {
			vehicleType = *cmd.VehicleType()
		}
		if cmd.VehicleNumber() != nil {
			vehicleNumber = *cmd.VehicleNumber()
		}
		drv.SetVehicle(vehicleType, vehicleNumber)
	}

	if status := cmd.Status(); status != nil {
		if err = drv.SetStatus(*status); err != nil {
			return err
		}
	}

	if active := cmd.IsActive(); active != nil {
		if *active {
			drv.Activate()
		} else {
			drv.Deactivate()
		}
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
