package commands

import (
	"context"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
)

// CreateTransactionCommandHandler posts one manual ledger entry and moves
// the driver balance in the same transaction. Expense and adjustment
// postings may not drive the balance negative; payment and refund are never
// blocked.
type CreateTransactionCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewCreateTransactionCommandHandler creates a handler for manual postings.
func NewCreateTransactionCommandHandler(uowFactory LedgerUoWFactory) CreateTransactionCommandHandler {
	return CreateTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the posting command.
func (h *CreateTransactionCommandHandler) Handle(ctx context.Context, cmd CreateTransactionCommand) error {
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

	if shipmentID := cmd.ShipmentID(); shipmentID != nil {
		if _, err = uow.ShipmentRepository().Get(ctx, *shipmentID); err != nil {
			return err
		}
	}

	before, after, err := drv.Post(cmd.TransactionType(), cmd.Amount())
	if err != nil {
		return err
	}

	txn, err := ledger.NewTransaction(kernel.NewUUID(), drv.ID(), cmd.ShipmentID(),
		cmd.TransactionType(), cmd.Amount(), before, after,
		cmd.Description(), kernel.NewTransactionReference(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.LedgerRepository().Add(ctx, txn); err != nil {
		return err
	}
	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
