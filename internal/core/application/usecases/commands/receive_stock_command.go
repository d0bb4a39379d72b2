package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var (
	ErrReceiveStockCommandIsNotConstructed = errors.New(
		"ReceiveStockCommand must be created via NewReceiveStockCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// ReceiveStockCommand represents arriving goods: a quantity of one product
// credited to one warehouse's on-hand stock.
type ReceiveStockCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	warehouseID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewReceiveStockCommand creates a command to credit on-hand stock.
// The quantity must be positive.
func NewReceiveStockCommand(productID, warehouseID kernel.UUID, quantity int) (ReceiveStockCommand, error) {
	command := ReceiveStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setWarehouseID(warehouseID),
		command.setQuantity(quantity),
	); err != nil {
		return ReceiveStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveStockCommand) Validate() error {
	return c.guard.Validate(ErrReceiveStockCommandIsNotConstructed)
}

// ProductID returns the product being received.
func (c ReceiveStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// WarehouseID returns the receiving warehouse.
func (c ReceiveStockCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Quantity returns the arriving quantity.
func (c ReceiveStockCommand) Quantity() int {
	return c.quantity
}

func (c *ReceiveStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *ReceiveStockCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *ReceiveStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
