package commands

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// CreateDriverCommandHandler registers a new driver. The license number is
// the unique business key; a duplicate is rejected before insert.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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
	existing, err := driverRepo.GetByLicenseNumber(ctx, cmd.LicenseNumber())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewDuplicateEntryError("driver", cmd.LicenseNumber())
	}

	drv, err := driver.NewDriver(cmd.DriverID(), cmd.FirstName(), cmd.LastName(),
		cmd.LicenseNumber(), cmd.PhoneNumber())
	if err != nil {
		return err
	}
	drv.SetContact(cmd.PhoneNumber(), cmd.Email())
	drv.SetVehicle(cmd.VehicleType(), cmd.VehicleNumber())

	if err = driverRepo.Add(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
