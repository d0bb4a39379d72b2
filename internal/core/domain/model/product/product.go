// Package product contains the Product entity: a stockable item identified by
// its SKU. Products are soft-deleted via the isActive flag.
package product

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New(
		"Product must be created via NewProduct constructor")

	// ErrSKUIsRequired is returned when the SKU is empty.
	ErrSKUIsRequired = errs.NewValueIsRequiredError("sku")

	// ErrNameIsRequired is returned when the product name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("product name")

	// ErrUnitPriceIsNegative is returned when the unit price is negative.
	ErrUnitPriceIsNegative = errs.NewValueIsInvalidError("unit price")
)

// DefaultUnit is used when the caller supplies no measurement unit.
const DefaultUnit = "pcs"

// Product is a stockable item. The SKU is the unique business key and the
// unit price is the default snapshotted onto shipment items.
type Product struct {
	id kernel.UUID

	sku         string
	name        string
	description string
	category    string

	unitPrice decimal.Decimal
	unit      string

	lowStockThreshold int
	isActive          bool

	isConstructed bool
}

// NewProduct creates an active product.
func NewProduct(id kernel.UUID, sku, name string, unitPrice decimal.Decimal) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if sku == "" {
		return nil, ErrSKUIsRequired
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if unitPrice.IsNegative() {
		return nil, ErrUnitPriceIsNegative
	}

	return &Product{
		id:            id,
		sku:           sku,
		name:          name,
		unitPrice:     unitPrice,
		unit:          DefaultUnit,
		isActive:      true,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	sku, name, description, category string,
	unitPrice decimal.Decimal,
	unit string,
	lowStockThreshold int,
	isActive bool,
) (*Product, error) {
	p, err := NewProduct(id, sku, name, unitPrice)
	if err != nil {
		return nil, err
	}

	p.description = description
	p.category = category
	if unit != "" {
		p.unit = unit
	}
	p.lowStockThreshold = lowStockThreshold
	p.isActive = isActive
	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// SetDetails updates the descriptive fields.
func (p *Product) SetDetails(description, category, unit string) {
	p.description = description
	p.category = category
	if unit != "" {
		p.unit = unit
	}
}

// SetUnitPrice updates the default unit price.
func (p *Product) SetUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return ErrUnitPriceIsNegative
	}

	p.unitPrice = unitPrice
	return nil
}

// SetLowStockThreshold updates the low-stock alert threshold.
func (p *Product) SetLowStockThreshold(threshold int) {
	p.lowStockThreshold = threshold
}

// Deactivate soft-deletes the product.
func (p *Product) Deactivate() {
	p.isActive = false
}

// Activate reverses a soft delete.
func (p *Product) Activate() {
	p.isActive = true
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SKU returns the unique business key.
func (p *Product) SKU() string {
	return p.sku
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text description, if any.
func (p *Product) Description() string {
	return p.description
}

// Category returns the category label, if any.
func (p *Product) Category() string {
	return p.category
}

// UnitPrice returns the default unit price.
func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// Unit returns the measurement unit.
func (p *Product) Unit() string {
	return p.unit
}

// LowStockThreshold returns the low-stock alert threshold.
func (p *Product) LowStockThreshold() int {
	return p.lowStockThreshold
}

// IsActive reports whether the product is soft-deleted.
func (p *Product) IsActive() bool {
	return p.isActive
}
