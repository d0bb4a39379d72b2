package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/services"
)

// SettleShipmentCommandHandler settles a delivered shipment. One transaction
// covers the shipment's financial fields, the driver balance moves, and one
// or two ledger entries: the driver payment always, the combined expense
// debit only when fuel and other expenses are positive. The expense entry is
// chained off the post-payment balance and may drive it negative; the
// negative-balance guard applies to manually created transactions only.
type SettleShipmentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewSettleShipmentCommandHandler creates a handler for settlement.
func NewSettleShipmentCommandHandler(uowFactory LedgerUoWFactory) SettleShipmentCommandHandler {
	return SettleShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
func (h *SettleShipmentCommandHandler) Handle(ctx context.Context, cmd SettleShipmentCommand) error {
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

	settlement, err := services.NewSettlementCalculator().Calculate(shp, cmd.FuelCost(), cmd.OtherExpenses())
	if err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	drv, err := driverRepo.Get(ctx, *shp.DriverID())
	if err != nil {
		return err
	}

	if err = shp.Settle(settlement.DriverPayment, settlement.FuelCost,
		settlement.OtherExpenses, settlement.CompanyProfit); err != nil {
		return err
	}

	now := time.Now().UTC()
	ledgerRepo := uow.LedgerRepository()
	shipmentID := shp.ID()

	before, after, err := drv.Post(ledger.TypePayment, settlement.DriverPayment)
	if err != nil {
		return err
	}
	payment, err := ledger.NewTransaction(kernel.NewUUID(), drv.ID(), &shipmentID,
		ledger.TypePayment, settlement.DriverPayment, before, after,
		fmt.Sprintf("Payment for shipment %s", shp.TrackingNumber()),
		kernel.PaymentReference(shp.TrackingNumber()), now)
	if err != nil {
		return err
	}
	if err = ledgerRepo.Add(ctx, payment); err != nil {
		return err
	}

	if settlement.HasExpenses() {
		debit := settlement.TotalExpenses().Neg()
		before, after = drv.PostUnchecked(debit)
		expense, err := ledger.NewTransaction(kernel.NewUUID(), drv.ID(), &shipmentID,
			ledger.TypeExpense, debit, before, after,
			fmt.Sprintf("Expenses for shipment %s", shp.TrackingNumber()),
			kernel.ExpenseReference(shp.TrackingNumber()), now)
		if err != nil {
			return err
		}
		if err = ledgerRepo.Add(ctx, expense); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return err
	}
	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
