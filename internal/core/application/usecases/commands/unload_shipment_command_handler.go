package commands

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/stock"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// UnloadShipmentCommandHandler moves a shipment's goods between warehouses:
// each item is consumed from the origin's reserved stock and credited to the
// receiving warehouse, whose record is created lazily. All items and both
// warehouses' records move in one transaction.
//
// An origin record that no longer exists is skipped rather than failed; the
// goods were already on the truck.
type UnloadShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUnloadShipmentCommandHandler creates a handler for warehouse unloading.
func NewUnloadShipmentCommandHandler(uowFactory ShipmentUoWFactory) UnloadShipmentCommandHandler {
	return UnloadShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unload command.
func (h *UnloadShipmentCommandHandler) Handle(ctx context.Context, cmd UnloadShipmentCommand) error {
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

	shp, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if _, err = uow.WarehouseRepository().Get(ctx, cmd.WarehouseID()); err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	for _, item := range shp.Items() {
		origin, err := stockRepo.GetByProductAndWarehouse(ctx, item.ProductID(), shp.OriginWarehouseID())
		switch {
		case err == nil:
			if err = origin.Consume(item.Quantity()); err != nil {
				return err
			}
			if err = stockRepo.Update(ctx, origin); err != nil {
				return err
			}
		case errors.Is(err, errs.ErrObjectNotFound):
		default:
			return err
		}

		destination, err := stockRepo.GetByProductAndWarehouse(ctx, item.ProductID(), cmd.WarehouseID())
		switch {
		case err == nil:
			if err = destination.Receive(item.Quantity()); err != nil {
				return err
			}
			if err = stockRepo.Update(ctx, destination); err != nil {
				return err
			}
		case errors.Is(err, errs.ErrObjectNotFound):
			destination, err = stock.NewStockRecord(kernel.NewUUID(), item.ProductID(), cmd.WarehouseID())
			if err != nil {
				return err
			}
			if err = destination.Receive(item.Quantity()); err != nil {
				return err
			}
			if err = stockRepo.Add(ctx, destination); err != nil {
				return err
			}
		default:
			return err
		}
	}

	return uow.Commit(ctx)
}
