package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrStockActionIsInvalid = errors.New("stock action is invalid")
)

// StockAction selects which reservation-ledger mutation to apply.
type StockAction int

const (
	// StockActionUnknown is the zero value and is never valid.
	StockActionUnknown StockAction = iota

	// StockActionReserve commits available stock to an open shipment.
	StockActionReserve

	// StockActionRelease returns previously reserved stock to available.
	StockActionRelease

	// StockActionConsume physically removes previously reserved stock.
	StockActionConsume
)

// AdjustStockCommand represents one reservation-ledger mutation on the
// (product, warehouse) stock record: reserve, release, or consume.
//
// The three actions share a command because they differ only in which
// domain mutation runs; each is still exposed as its own operation.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	action      StockAction
	productID   kernel.UUID
	warehouseID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command for one stock mutation.
// The quantity must be positive and the action one of the defined three.
func NewAdjustStockCommand(
	action StockAction,
	productID, warehouseID kernel.UUID,
	quantity int,
) (AdjustStockCommand, error) {
	command := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAction(action),
		command.setProductID(productID),
		command.setWarehouseID(warehouseID),
		command.setQuantity(quantity),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// Action returns which mutation to apply.
func (c AdjustStockCommand) Action() StockAction {
	return c.action
}

// ProductID returns the product whose stock record is mutated.
func (c AdjustStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// WarehouseID returns the warehouse whose stock record is mutated.
func (c AdjustStockCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Quantity returns the mutation quantity.
func (c AdjustStockCommand) Quantity() int {
	return c.quantity
}

func (c *AdjustStockCommand) setAction(action StockAction) error {
	if action != StockActionReserve && action != StockActionRelease && action != StockActionConsume {
		return ErrStockActionIsInvalid
	}

	c.action = action
	return nil
}

func (c *AdjustStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AdjustStockCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *AdjustStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
