package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var (
	ErrEnqueueShipmentCommandIsNotConstructed = errors.New(
		"EnqueueShipmentCommand must be created via NewEnqueueShipmentCommand constructor",
	)
	ErrPriorityIsInvalid = errors.New("priority must not be negative")
)

// EnqueueShipmentCommand represents a request to add a shipment to a
// warehouse's dock queue.
type EnqueueShipmentCommand struct { //nolint:recvcheck //using for validation
	entryID     kernel.UUID
	warehouseID kernel.UUID
	shipmentID  kernel.UUID
	driverID    kernel.UUID

	priority                int
	estimatedLoadingMinutes int

	guard guard.ConstructorGuard
}

// NewEnqueueShipmentCommand creates a command to enqueue a shipment.
// A non-positive estimate falls back to the queue default.
func NewEnqueueShipmentCommand(
	entryID, warehouseID, shipmentID, driverID kernel.UUID,
	priority, estimatedLoadingMinutes int,
) (EnqueueShipmentCommand, error) {
	command := EnqueueShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEntryID(entryID),
		command.setWarehouseID(warehouseID),
		command.setShipmentID(shipmentID),
		command.setDriverID(driverID),
		command.setPriority(priority),
	); err != nil {
		return EnqueueShipmentCommand{}, err
	}

	command.estimatedLoadingMinutes = estimatedLoadingMinutes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EnqueueShipmentCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueShipmentCommandIsNotConstructed)
}

// EntryID returns the unique identifier for the new queue entry.
func (c EnqueueShipmentCommand) EntryID() kernel.UUID {
	return c.entryID
}

// WarehouseID returns the warehouse whose dock is claimed.
func (c EnqueueShipmentCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ShipmentID returns the shipment joining the queue.
func (c EnqueueShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DriverID returns the driver who will load at the dock.
func (c EnqueueShipmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Priority returns the queue priority. Higher is served first.
func (c EnqueueShipmentCommand) Priority() int {
	return c.priority
}

// EstimatedLoadingMinutes returns the loading estimate.
func (c EnqueueShipmentCommand) EstimatedLoadingMinutes() int {
	return c.estimatedLoadingMinutes
}

func (c *EnqueueShipmentCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *EnqueueShipmentCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *EnqueueShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *EnqueueShipmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *EnqueueShipmentCommand) setPriority(priority int) error {
	if priority < 0 {
		return ErrPriorityIsInvalid
	}

	c.priority = priority
	return nil
}
