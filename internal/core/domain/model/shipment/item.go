package shipment

import (
	"errors"
	"fmt"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrShipmentItemIsNotConstructed is returned when a ShipmentItem was not
// created through NewShipmentItem or RestoreShipmentItem.
var ErrShipmentItemIsNotConstructed = errors.New("ShipmentItem must be created via NewShipmentItem constructor")

// ShipmentItem is one order line of a shipment. The unit price is snapshotted
// from the product at shipment creation time and is immune to later product
// price changes.
type ShipmentItem struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
	// totalPrice = unitPrice * quantity, fixed at creation.
	totalPrice decimal.Decimal

	isConstructed bool
}

// NewShipmentItem creates an order line with the line total derived from the
// snapshotted unit price.
func NewShipmentItem(id, productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (*ShipmentItem, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}

	return &ShipmentItem{
		id:            id,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		totalPrice:    unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}, nil
}

// RestoreShipmentItem reconstructs an order line from persistence.
func RestoreShipmentItem(
	id, productID kernel.UUID,
	quantity int,
	unitPrice, totalPrice decimal.Decimal,
) (*ShipmentItem, error) {
	item, err := NewShipmentItem(id, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	item.totalPrice = totalPrice
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *ShipmentItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrShipmentItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *ShipmentItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the shipped product.
func (i *ShipmentItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of shipped units.
func (i *ShipmentItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken at shipment creation.
func (i *ShipmentItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns the line total (unit price times quantity).
func (i *ShipmentItem) TotalPrice() decimal.Decimal {
	return i.totalPrice
}
