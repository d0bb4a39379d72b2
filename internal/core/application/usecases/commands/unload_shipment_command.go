package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrUnloadShipmentCommandIsNotConstructed = errors.New(
	"UnloadShipmentCommand must be created via NewUnloadShipmentCommand constructor",
)

// UnloadShipmentCommand represents a mid-route stock transfer: every item of
// a shipment is consumed at the origin warehouse and credited to the given
// warehouse.
type UnloadShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnloadShipmentCommand creates a command to unload a shipment at a warehouse.
func NewUnloadShipmentCommand(shipmentID, warehouseID kernel.UUID) (UnloadShipmentCommand, error) {
	command := UnloadShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setWarehouseID(warehouseID),
	); err != nil {
		return UnloadShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnloadShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUnloadShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being unloaded.
func (c UnloadShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// WarehouseID returns the warehouse receiving the goods.
func (c UnloadShipmentCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *UnloadShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UnloadShipmentCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
