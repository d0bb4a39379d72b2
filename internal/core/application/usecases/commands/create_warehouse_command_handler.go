package commands

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/warehouse"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// CreateWarehouseCommandHandler registers a new warehouse. The code is the
// unique business key; a duplicate is rejected before insert.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse registration.
func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
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
	existing, err := warehouseRepo.GetByCode(ctx, cmd.Code())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewDuplicateEntryError("warehouse", cmd.Code())
	}

	wh, err := warehouse.NewWarehouse(cmd.WarehouseID(), cmd.Code(), cmd.Name(),
		cmd.Address(), cmd.Location())
	if err != nil {
		return err
	}
	wh.SetCapacity(cmd.Capacity())

	if err = warehouseRepo.Add(ctx, wh); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
