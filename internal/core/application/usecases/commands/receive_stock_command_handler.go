package commands

import (
	"context"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/stock"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// ReceiveStockCommandHandler credits arriving goods to a warehouse.
// The stock record is created lazily the first time a product arrives at a
// warehouse; after that the same record is credited in place.
type ReceiveStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewReceiveStockCommandHandler creates a handler for stock receiving.
func NewReceiveStockCommandHandler(uowFactory StockUoWFactory) ReceiveStockCommandHandler {
	return ReceiveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receive command. Product and warehouse must exist;
// the record lookup, credit, and persist run in one transaction.
func (h *ReceiveStockCommandHandler) Handle(ctx context.Context, cmd ReceiveStockCommand) error {
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

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}
	if _, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseID()); err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	record, err := stockRepo.GetByProductAndWarehouse(ctx, cmd.ProductID(), cmd.WarehouseID())
	switch {
	case err == nil:
		if err = record.Receive(cmd.Quantity()); err != nil {
			return err
		}
		if err = stockRepo.Update(ctx, record); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		record, err = stock.NewStockRecord(kernel.NewUUID(), cmd.ProductID(), cmd.WarehouseID())
		if err != nil {
			return err
		}
		if err = record.Receive(cmd.Quantity()); err != nil {
			return err
		}
		if err = stockRepo.Add(ctx, record); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
