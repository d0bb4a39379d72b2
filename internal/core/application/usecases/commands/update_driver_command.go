package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a partial update of a driver: nil fields
// are left untouched. Setting isActive false is the soft delete.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	phoneNumber   *string
	email         *string
	vehicleType   *string
	vehicleNumber *string
	status        *driver.Status
	isActive      *bool

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command for a partial driver update.
func NewUpdateDriverCommand(driverID kernel.UUID) (UpdateDriverCommand, error) {
	command := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}

	command.driverID = driverID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// SetContact stages a phone and email change.
func (c *UpdateDriverCommand) SetContact(phoneNumber, email *string) {
	c.phoneNumber = phoneNumber
	c.email = email
}

// SetVehicle stages a vehicle change.
func (c *UpdateDriverCommand) SetVehicle(vehicleType, vehicleNumber *string) {
	c.vehicleType = vehicleType
	c.vehicleNumber = vehicleNumber
}

// SetStatus stages a status change.
func (c *UpdateDriverCommand) SetStatus(status *driver.Status) {
	c.status = status
}

// SetActive stages an activation or soft delete.
func (c *UpdateDriverCommand) SetActive(isActive *bool) {
	c.isActive = isActive
}

// DriverID returns the driver being updated.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// PhoneNumber returns the staged phone change, or nil.
func (c UpdateDriverCommand) PhoneNumber() *string {
	return c.phoneNumber
}

// Email returns the staged email change, or nil.
func (c UpdateDriverCommand) Email() *string {
	return c.email
}

// VehicleType returns the staged vehicle type change, or nil.
func (c UpdateDriverCommand) VehicleType() *string {
	return c.vehicleType
}

// VehicleNumber returns the staged vehicle plate change, or nil.
func (c UpdateDriverCommand) VehicleNumber() *string {
	return c.vehicleNumber
}

// Status returns the staged status change, or nil.
func (c UpdateDriverCommand) Status() *driver.Status {
	return c.status
}

// IsActive returns the staged activation change, or nil.
func (c UpdateDriverCommand) IsActive() *bool {
	return c.isActive
}
