package commands

import (
	"context"
)

// UpdateWarehouseCommandHandler applies a partial warehouse update.
type UpdateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewUpdateWarehouseCommandHandler creates a handler for warehouse updates.
func NewUpdateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) UpdateWarehouseCommandHandler {
	return UpdateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateWarehouseCommandHandler) Handle(ctx context.Context, cmd UpdateWarehouseCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()
	wh, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if err != nil {
		return err
	}

	if cmd.Name() != nil || cmd.Address() != nil || cmd.Location() != nil {
		name := wh.Name()
		address := wh.Address()
		location := wh.Location()
		if cmd.Name() != nil {
			name = *cmd.Name()
		}
		if cmd.Address() != nil {
			address = *cmd.Address()
		}
		if cmd.Location() != nil {
			location = *cmd.Location()
		}
		if err = wh.Rename(name, address, location); err != nil {
			return err
		}
	}

	if capacity := cmd.Capacity(); capacity != nil {
		wh.SetCapacity(*capacity)
	}

	if active := cmd.IsActive(); active != nil {
		if *active {
			wh.Activate()
		} else {
			wh.Deactivate()
		}
	}

	if err = warehouseRepo.Update(ctx, wh); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
