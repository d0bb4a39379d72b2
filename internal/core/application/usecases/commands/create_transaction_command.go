package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateTransactionCommandIsNotConstructed = errors.New(
		"CreateTransactionCommand must be created via NewCreateTransactionCommand constructor",
	)
	ErrAmountIsZero = errors.New("amount must not be zero")
)

// CreateTransactionCommand represents a manual ledger posting against a
// driver: a refund, an adjustment, or an out-of-band payment or expense.
// The amount is signed; the caller posts credits positive and debits negative.
type CreateTransactionCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	shipmentID      *kernel.UUID
	transactionType ledger.TransactionType
	amount          decimal.Decimal
	description     string

	guard guard.ConstructorGuard
}

// NewCreateTransactionCommand creates a command for a manual ledger posting.
func NewCreateTransactionCommand(
	driverID kernel.UUID,
	shipmentID *kernel.UUID,
	transactionType ledger.TransactionType,
	amount decimal.Decimal,
	description string,
) (CreateTransactionCommand, error) {
	command := CreateTransactionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setShipmentID(shipmentID),
		command.setTransactionType(transactionType),
		command.setAmount(amount),
	); err != nil {
		return CreateTransactionCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransactionCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransactionCommandIsNotConstructed)
}

// DriverID returns the driver whose balance the posting moves.
func (c CreateTransactionCommand) DriverID() kernel.UUID {
	return c.driverID
}

// ShipmentID returns the optional related shipment.
func (c CreateTransactionCommand) ShipmentID() *kernel.UUID {
	return c.shipmentID
}

// TransactionType returns the ledger entry classification.
func (c CreateTransactionCommand) TransactionType() ledger.TransactionType {
	return c.transactionType
}

// Amount returns the signed amount.
func (c CreateTransactionCommand) Amount() decimal.Decimal {
	return c.amount
}

// Description returns the free-text description, if any.
func (c CreateTransactionCommand) Description() string {
	return c.description
}

func (c *CreateTransactionCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateTransactionCommand) setShipmentID(shipmentID *kernel.UUID) error {
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return err
		}
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateTransactionCommand) setTransactionType(transactionType ledger.TransactionType) error {
	if err := transactionType.Validate(); err != nil {
		return err
	}

	c.transactionType = transactionType
	return nil
}

func (c *CreateTransactionCommand) setAmount(amount decimal.Decimal) error {
	if amount.IsZero() {
		return ErrAmountIsZero
	}

	c.amount = amount
	return nil
}
