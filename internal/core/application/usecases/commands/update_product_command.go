package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a partial update of a product: nil fields
// are left untouched. Setting isActive false is the soft delete.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	description       *string
	category          *string
	unit              *string
	unitPrice         *decimal.Decimal
	lowStockThreshold *int
	isActive          *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command for a partial product update.
func NewUpdateProductCommand(productID kernel.UUID) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	command.productID = productID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// SetDetails stages descriptive field changes.
func (c *UpdateProductCommand) SetDetails(description, category, unit *string) {
	c.description = description
	c.category = category
	c.unit = unit
}

// SetUnitPrice stages a unit price change.
func (c *UpdateProductCommand) SetUnitPrice(unitPrice *decimal.Decimal) {
	c.unitPrice = unitPrice
}

// SetLowStockThreshold stages a threshold change.
func (c *UpdateProductCommand) SetLowStockThreshold(threshold *int) {
	c.lowStockThreshold = threshold
}

// SetActive stages an activation or soft delete.
func (c *UpdateProductCommand) SetActive(isActive *bool) {
	c.isActive = isActive
}

// ProductID returns the product being updated.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Description returns the staged description change, or nil.
func (c UpdateProductCommand) Description() *string {
	return c.description
}

// Category returns the staged category change, or nil.
func (c UpdateProductCommand) Category() *string {
	return c.category
}

// Unit returns the staged unit change, or nil.
func (c UpdateProductCommand) Unit() *string {
	return c.unit
}

// UnitPrice returns the staged unit price change, or nil.
func (c UpdateProductCommand) UnitPrice() *decimal.Decimal {
	return c.unitPrice
}

// LowStockThreshold returns the staged threshold change, or nil.
func (c UpdateProductCommand) LowStockThreshold() *int {
	return c.lowStockThreshold
}

// IsActive returns the staged activation change, or nil.
func (c UpdateProductCommand) IsActive() *bool {
	return c.isActive
}
