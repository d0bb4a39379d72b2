package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrFirstNameIsRequired     = errors.New("first name is required")
	ErrLastNameIsRequired      = errors.New("last name is required")
	ErrLicenseNumberIsRequired = errors.New("license number is required")
)

// CreateDriverCommand represents a request to register a new driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	firstName     string
	lastName      string
	licenseNumber string
	phoneNumber   string
	email         string
	vehicleType   string
	vehicleNumber string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	firstName, lastName, licenseNumber, phoneNumber string,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setNames(firstName, lastName),
		command.setLicenseNumber(licenseNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	command.phoneNumber = phoneNumber
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// SetContact attaches the optional email.
func (c *CreateDriverCommand) SetContact(email string) {
	c.email = email
}

// SetVehicle attaches the optional vehicle details.
func (c *CreateDriverCommand) SetVehicle(vehicleType, vehicleNumber string) {
	c.vehicleType = vehicleType
	c.vehicleNumber = vehicleNumber
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// FirstName returns the driver's first name.
func (c CreateDriverCommand) FirstName() string {
	return c.firstName
}

// LastName returns the driver's last name.
func (c CreateDriverCommand) LastName() string {
	return c.lastName
}

// LicenseNumber returns the unique license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// PhoneNumber returns the driver's phone number.
func (c CreateDriverCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Email returns the optional email.
func (c CreateDriverCommand) Email() string {
	return c.email
}

// VehicleType returns the optional vehicle type.
func (c CreateDriverCommand) VehicleType() string {
	return c.vehicleType
}

// VehicleNumber returns the optional vehicle plate.
func (c CreateDriverCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setNames(firstName, lastName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}
