package commands

import (
	"context"
)

// AdjustStockCommandHandler applies reserve, release, and consume mutations
// to an existing stock record. Unlike receiving, these never create a record:
// a missing record surfaces as ObjectNotFound.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the adjustment. The record lookup, mutation, and persist
// run in one transaction so a failed mutation leaves the record untouched.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	stockRepo := uow.StockRepository()
	record, err := stockRepo.GetByProductAndWarehouse(ctx, cmd.ProductID(), cmd.WarehouseID())
	if err != nil {
		return err
	}

	switch cmd.Action() {
	case StockActionReserve:
		err = record.Reserve(cmd.Quantity())
	case StockActionRelease:
		err = record.Release(cmd.Quantity())
	case StockActionConsume:
		err = record.Consume(cmd.Quantity())
	default:
		err = ErrStockActionIsInvalid
	}
	if err != nil {
		return err
	}

	if err = stockRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
