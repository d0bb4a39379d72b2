package commands

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler creates a shipment atomically with its items,
// legs, and one stock reservation per item at the origin warehouse. If any
// line cannot be reserved the whole creation rolls back.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command. Unit prices are snapshotted from the
// product catalog, not taken from the caller.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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
	if _, err := warehouseRepo.Get(ctx, cmd.OriginWarehouseID()); err != nil {
		return err
	}
	if dest := cmd.DestinationWarehouseID(); dest != nil {
		if _, err := warehouseRepo.Get(ctx, *dest); err != nil {
			return err
		}
	}

	if driverID := cmd.DriverID(); driverID != nil {
		if _, err := uow.DriverRepository().Get(ctx, *driverID); err != nil {
			return err
		}
	}

	productRepo := uow.ProductRepository()
	stockRepo := uow.StockRepository()

	items := make([]*shipment.ShipmentItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		prd, err := productRepo.Get(ctx, input.ProductID)
		if err != nil {
			return err
		}

		item, err := shipment.NewShipmentItem(kernel.NewUUID(), input.ProductID,
			input.Quantity, prd.UnitPrice())
		if err != nil {
			return err
		}
		items = append(items, item)

		record, err := stockRepo.GetByProductAndWarehouse(ctx, input.ProductID, cmd.OriginWarehouseID())
		if err != nil {
			return err
		}
		if err = record.Reserve(input.Quantity); err != nil {
			return err
		}
		if err = stockRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	legs := make([]*shipment.ShipmentLeg, 0, len(cmd.Legs()))
	for _, input := range cmd.Legs() {
		leg, err := shipment.NewShipmentLeg(kernel.NewUUID(), input.Sequence,
			input.FromWarehouseID, input.ToWarehouseID,
			input.ScheduledDeparture, input.ScheduledArrival, input.Distance)
		if err != nil {
			return err
		}
		legs = append(legs, leg)
	}

	shp, err := shipment.NewShipment(cmd.ShipmentID(), kernel.NewTrackingNumber(),
		cmd.OriginWarehouseID(), cmd.DestinationWarehouseID(), items, legs)
	if err != nil {
		return err
	}
	shp.SetRecipient(cmd.DestinationAddress(), cmd.RecipientName(), cmd.RecipientPhone())
	shp.SetSchedule(cmd.ScheduledPickupDate(), cmd.ScheduledDeliveryDate())
	if driverID := cmd.DriverID(); driverID != nil {
		if err = shp.AssignDriver(*driverID); err != nil {
			return err
		}
	}

	if err = uow.ShipmentRepository().Add(ctx, shp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
