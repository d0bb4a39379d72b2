package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrUpdateWarehouseCommandIsNotConstructed = errors.New(
	"UpdateWarehouseCommand must be created via NewUpdateWarehouseCommand constructor",
)

// UpdateWarehouseCommand represents a partial update of a warehouse: nil
// fields are left untouched. Setting isActive false is the soft delete.
type UpdateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID

	name     *string
	address  *string
	location *string
	capacity *int
	isActive *bool

	guard guard.ConstructorGuard
}

// NewUpdateWarehouseCommand creates a command for a partial warehouse update.
func NewUpdateWarehouseCommand(warehouseID kernel.UUID) (UpdateWarehouseCommand, error) {
	command := UpdateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := warehouseID.Validate(); err != nil {
		return UpdateWarehouseCommand{}, err
	}

	command.warehouseID = warehouseID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWarehouseCommandIsNotConstructed)
}

// SetNameAndAddress stages display name and address changes.
func (c *UpdateWarehouseCommand) SetNameAndAddress(name, address, location *string) {
	c.name = name
	c.address = address
	c.location = location
}

// SetCapacity stages a capacity change.
func (c *UpdateWarehouseCommand) SetCapacity(capacity *int) {
	c.capacity = capacity
}

// SetActive stages an activation or soft delete.
func (c *UpdateWarehouseCommand) SetActive(isActive *bool) {
	c.isActive = isActive
}

// WarehouseID returns the warehouse being updated.
func (c UpdateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Name returns the staged name change, or nil.
func (c UpdateWarehouseCommand) Name() *string {
	return c.name
}

// Address returns the staged address change, or nil.
func (c UpdateWarehouseCommand) Address() *string {
	return c.address
}

// Location returns the staged location change, or nil.
func (c UpdateWarehouseCommand) Location() *string {
	return c.location
}

// Capacity returns the staged capacity change, or nil.
func (c UpdateWarehouseCommand) Capacity() *int {
	return c.capacity
}

// IsActive returns the staged activation change, or nil.
func (c UpdateWarehouseCommand) IsActive() *bool {
	return c.isActive
}
