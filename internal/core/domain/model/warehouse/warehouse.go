// Package warehouse contains the Warehouse entity: a named stocking location
// with one loading dock. Warehouses are soft-deleted via the isActive flag.
package warehouse

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was
	// not created through NewWarehouse or RestoreWarehouse.
	ErrWarehouseIsNotConstructed = errors.New(
		"Warehouse must be created via NewWarehouse constructor")

	// ErrCodeIsRequired is returned when the warehouse code is empty.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("warehouse code")

	// ErrNameIsRequired is returned when the warehouse name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("warehouse name")
)

// Warehouse is a stocking location. The code is the unique business key.
type Warehouse struct {
	id kernel.UUID

	code     string
	name     string
	address  string
	location string

	latitude  *decimal.Decimal
	longitude *decimal.Decimal

	capacity int
	isActive bool

	isConstructed bool
}

// NewWarehouse creates an active warehouse.
func NewWarehouse(id kernel.UUID, code, name, address, location string) (*Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, ErrCodeIsRequired
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Warehouse{
		id:            id,
		code:          code,
		name:          name,
		address:       address,
		location:      location,
		isActive:      true,
		isConstructed: true,
	}, nil
}

// RestoreWarehouse reconstructs a warehouse from persistence.
func RestoreWarehouse(
	id kernel.UUID,
	code, name, address, location string,
	latitude, longitude *decimal.Decimal,
	capacity int,
	isActive bool,
) (*Warehouse, error) {
	w, err := NewWarehouse(id, code, name, address, location)
	if err != nil {
		return nil, err
	}

	w.latitude = latitude
	w.longitude = longitude
	w.capacity = capacity
	w.isActive = isActive
	return w, nil
}

// Validate ensures the warehouse was created through a constructor.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// SetCoordinates records the warehouse position.
func (w *Warehouse) SetCoordinates(latitude, longitude *decimal.Decimal) {
	w.latitude = latitude
	w.longitude = longitude
}

// SetCapacity records the storage capacity.
func (w *Warehouse) SetCapacity(capacity int) {
	w.capacity = capacity
}

// Rename updates the display name and address fields.
func (w *Warehouse) Rename(name, address, location string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	w.name = name
	w.address = address
	w.location = location
	return nil
}

// Deactivate soft-deletes the warehouse.
func (w *Warehouse) Deactivate() {
	w.isActive = false
}

// Activate reverses a soft delete.
func (w *Warehouse) Activate() {
	w.isActive = true
}

// IsEqual compares two warehouses by their unique identifiers.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Code returns the unique business key.
func (w *Warehouse) Code() string {
	return w.code
}

// Name returns the display name.
func (w *Warehouse) Name() string {
	return w.name
}

// Address returns the street address.
func (w *Warehouse) Address() string {
	return w.address
}

// Location returns the city or region label.
func (w *Warehouse) Location() string {
	return w.location
}

// Latitude returns the latitude, if recorded.
func (w *Warehouse) Latitude() *decimal.Decimal {
	return w.latitude
}

// Longitude returns the longitude, if recorded.
func (w *Warehouse) Longitude() *decimal.Decimal {
	return w.longitude
}

// Capacity returns the storage capacity.
func (w *Warehouse) Capacity() int {
	return w.capacity
}

// IsActive reports whether the warehouse is soft-deleted.
func (w *Warehouse) IsActive() bool {
	return w.isActive
}
