package stock

import (
	"errors"
	"fmt"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

var (
	// ErrStockRecordIsNotConstructed is returned when a StockRecord instance was not
	// created through NewStockRecord or RestoreStockRecord.
	ErrStockRecordIsNotConstructed = errors.New("StockRecord must be created via NewStockRecord constructor")
)

// StockRecord is the stock ledger entry for one product at one warehouse.
//
// Invariants, enforced by every mutating method:
//   - quantity >= 0
//   - reservedQuantity >= 0
//   - reservedQuantity <= quantity
//
// Available() is derived and never stored independently of the two counters.
type StockRecord struct {
	id          kernel.UUID
	productID   kernel.UUID
	warehouseID kernel.UUID

	// quantity is the physical on-hand count at the warehouse.
	quantity int
	// reservedQuantity is committed to open shipments but not yet removed.
	reservedQuantity int

	isConstructed bool
}

// NewStockRecord creates an empty stock record for the given product and
// warehouse. Records start with both counters at zero; stock arrives through
// Receive.
func NewStockRecord(id, productID, warehouseID kernel.UUID) (*StockRecord, error) {
	if err := errors.Join(id.Validate(), productID.Validate(), warehouseID.Validate()); err != nil {
		return nil, err
	}

	return &StockRecord{
		id:            id,
		productID:     productID,
		warehouseID:   warehouseID,
		isConstructed: true,
	}, nil
}

// RestoreStockRecord reconstructs a stock record from persistence.
func RestoreStockRecord(id, productID, warehouseID kernel.UUID, quantity, reservedQuantity int) (*StockRecord, error) {
	if err := errors.Join(id.Validate(), productID.Validate(), warehouseID.Validate()); err != nil {
		return nil, err
	}
	if quantity < 0 || reservedQuantity < 0 || reservedQuantity > quantity {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock quantities",
			fmt.Errorf("quantity %d, reserved %d", quantity, reservedQuantity))
	}

	return &StockRecord{
		id:               id,
		productID:        productID,
		warehouseID:      warehouseID,
		quantity:         quantity,
		reservedQuantity: reservedQuantity,
		isConstructed:    true,
	}, nil
}

// Validate ensures the record was created through a constructor.
func (r *StockRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrStockRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *StockRecord) ID() kernel.UUID {
	return r.id
}

// ProductID returns the product this record tracks.
func (r *StockRecord) ProductID() kernel.UUID {
	return r.productID
}

// WarehouseID returns the warehouse this record tracks.
func (r *StockRecord) WarehouseID() kernel.UUID {
	return r.warehouseID
}

// Quantity returns the on-hand quantity.
func (r *StockRecord) Quantity() int {
	return r.quantity
}

// Reserved returns the quantity committed to open shipments.
func (r *StockRecord) Reserved() int {
	return r.reservedQuantity
}

// Available returns the quantity free for new reservations,
// derived as quantity - reservedQuantity.
func (r *StockRecord) Available() int {
	return r.quantity - r.reservedQuantity
}

// Reserve commits qty units to an open shipment.
// Fails with InsufficientStockError if qty exceeds Available();
// the record is left unchanged on failure.
func (r *StockRecord) Reserve(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if r.Available() < qty {
		return errs.NewInsufficientStockError(
			r.productID.String(), r.warehouseID.String(), r.Available(), qty)
	}

	r.reservedQuantity += qty
	return nil
}

// Release returns qty previously reserved units to the available pool.
// Releasing more than is currently reserved fails; the quantity is never
// silently clamped at zero.
func (r *StockRecord) Release(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if qty > r.reservedQuantity {
		return errs.NewValueIsInvalidErrorWithCause("release quantity",
			fmt.Errorf("%d exceeds reserved %d", qty, r.reservedQuantity))
	}

	r.reservedQuantity -= qty
	return nil
}

// Consume physically removes qty previously reserved units from the warehouse,
// decrementing both counters. Consuming more than is reserved fails.
func (r *StockRecord) Consume(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	if qty > r.reservedQuantity {
		return errs.NewValueIsInvalidErrorWithCause("consume quantity",
			fmt.Errorf("%d exceeds reserved %d", qty, r.reservedQuantity))
	}

	r.quantity -= qty
	r.reservedQuantity -= qty
	return nil
}

// Receive credits qty arriving units to the on-hand quantity.
// Received goods are not reserved.
func (r *StockRecord) Receive(qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}

	r.quantity += qty
	return nil
}

func validateQuantity(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	return nil
}
