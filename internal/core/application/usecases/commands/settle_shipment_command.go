package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSettleShipmentCommandIsNotConstructed = errors.New(
		"SettleShipmentCommand must be created via NewSettleShipmentCommand constructor",
	)
	ErrExpenseIsNegative = errors.New("settlement expenses must not be negative")
)

// SettleShipmentCommand represents a request to settle a delivered shipment:
// pay the driver and book the company profit.
type SettleShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	fuelCost      decimal.Decimal
	otherExpenses decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSettleShipmentCommand creates a command to settle a shipment.
// Both expense figures must be non-negative.
func NewSettleShipmentCommand(
	shipmentID kernel.UUID,
	fuelCost, otherExpenses decimal.Decimal,
) (SettleShipmentCommand, error) {
	command := SettleShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setExpenses(fuelCost, otherExpenses),
	); err != nil {
		return SettleShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleShipmentCommand) Validate() error {
	return c.guard.Validate(ErrSettleShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being settled.
func (c SettleShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// FuelCost returns the fuel cost charged against the driver.
func (c SettleShipmentCommand) FuelCost() decimal.Decimal {
	return c.fuelCost
}

// OtherExpenses returns the remaining expenses charged against the driver.
func (c SettleShipmentCommand) OtherExpenses() decimal.Decimal {
	return c.otherExpenses
}

func (c *SettleShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *SettleShipmentCommand) setExpenses(fuelCost, otherExpenses decimal.Decimal) error {
	if fuelCost.IsNegative() || otherExpenses.IsNegative() {
		return ErrExpenseIsNegative
	}

	c.fuelCost = fuelCost
	c.otherExpenses = otherExpenses
	return nil
}
