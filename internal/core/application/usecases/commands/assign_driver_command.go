package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to put a driver on a shipment.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver.
func NewAssignDriverCommand(shipmentID, driverID kernel.UUID) (AssignDriverCommand, error) {
	command := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// ShipmentID returns the shipment receiving a driver.
func (c AssignDriverCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DriverID returns the driver being assigned.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
