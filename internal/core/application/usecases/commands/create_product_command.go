package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrSKUIsRequired         = errors.New("sku is required")
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrUnitPriceIsNegative   = errors.New("unit price must not be negative")
)

// CreateProductCommand represents a request to register a new product.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID         kernel.UUID
	sku               string
	name              string
	description       string
	category          string
	unitPrice         decimal.Decimal
	unit              string
	lowStockThreshold int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
func NewCreateProductCommand(
	productID kernel.UUID,
	sku, name string,
	unitPrice decimal.Decimal,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setSKU(sku),
		command.setName(name),
		command.setUnitPrice(unitPrice),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// SetDetails attaches the optional descriptive fields.
func (c *CreateProductCommand) SetDetails(description, category, unit string, lowStockThreshold int) {
	c.description = description
	c.category = category
	c.unit = unit
	c.lowStockThreshold = lowStockThreshold
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SKU returns the unique business key.
func (c CreateProductCommand) SKU() string {
	return c.sku
}

// Name returns the display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Category returns the optional category label.
func (c CreateProductCommand) Category() string {
	return c.category
}

// UnitPrice returns the default unit price.
func (c CreateProductCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// Unit returns the optional measurement unit.
func (c CreateProductCommand) Unit() string {
	return c.unit
}

// LowStockThreshold returns the optional low-stock alert threshold.
func (c CreateProductCommand) LowStockThreshold() int {
	return c.lowStockThreshold
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return ErrUnitPriceIsNegative
	}

	c.unitPrice = unitPrice
	return nil
}
