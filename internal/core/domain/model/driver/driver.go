package driver

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

	// ErrFirstNameIsRequired is returned when the first name is empty.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("first name")

	// ErrLastNameIsRequired is returned when the last name is empty.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("last name")

	// ErrLicenseNumberIsRequired is returned when the license number is empty.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("license number")
)

// Driver is the aggregate for one transporting driver. The balance field is
// the authoritative running total for new ledger postings; Post moves it and
// hands back the bracket the ledger entry must snapshot.
type Driver struct {
	id kernel.UUID

	firstName     string
	lastName      string
	licenseNumber string
	phoneNumber   string
	email         string

	vehicleType   string
	vehicleNumber string

	status  Status
	balance decimal.Decimal

	isActive bool

	isConstructed bool
}

// NewDriver creates an available, active driver with a zero balance.
func NewDriver(
	id kernel.UUID,
	firstName, lastName, licenseNumber, phoneNumber string,
) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if firstName == "" {
		return nil, ErrFirstNameIsRequired
	}
	if lastName == "" {
		return nil, ErrLastNameIsRequired
	}
	if licenseNumber == "" {
		return nil, ErrLicenseNumberIsRequired
	}

	return &Driver{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		licenseNumber: licenseNumber,
		phoneNumber:   phoneNumber,
		status:        StatusAvailable,
		balance:       decimal.Zero,
		isActive:      true,
		isConstructed: true,
	}, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	firstName, lastName, licenseNumber, phoneNumber, email string,
	vehicleType, vehicleNumber string,
	status Status,
	balance decimal.Decimal,
	isActive bool,
) (*Driver, error) {
	d, err := NewDriver(id, firstName, lastName, licenseNumber, phoneNumber)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.email = email
	d.vehicleType = vehicleType
	d.vehicleNumber = vehicleNumber
	d.status = status
	d.balance = balance
	d.isActive = isActive
	return d, nil
}

// Validate ensures the driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// SetContact updates phone and email.
func (d *Driver) SetContact(phoneNumber, email string) {
	d.phoneNumber = phoneNumber
	d.email = email
}

// SetVehicle updates the vehicle details.
func (d *Driver) SetVehicle(vehicleType, vehicleNumber string) {
	d.vehicleType = vehicleType
	d.vehicleNumber = vehicleNumber
}

// SetStatus sets the lifecycle status unconditionally.
func (d *Driver) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	d.status = status
	return nil
}

// EnsureAvailable fails with DriverUnavailable unless the driver is active
// and available. Shipment assignment is the only operation that demands this.
func (d *Driver) EnsureAvailable() error {
	if !d.isActive || d.status != StatusAvailable {
		return errs.NewDriverUnavailableError(d.id.String(), d.status.String())
	}
	return nil
}

// Post moves the balance by the signed amount and returns the
// (balanceBefore, balanceAfter) bracket for the ledger entry. Types that
// block negative balances fail with InsufficientBalance instead of going
// below zero; the balance is left untouched on failure.
func (d *Driver) Post(transactionType ledger.TransactionType, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	before := d.balance
	after := before.Add(amount)

	if after.IsNegative() && transactionType.BlocksNegativeBalance() {
		return decimal.Zero, decimal.Zero,
			errs.NewInsufficientBalanceError(d.id.String(), before, amount.Neg())
	}

	d.balance = after
	return before, after, nil
}

// PostUnchecked moves the balance by the signed amount with no negative-
// balance guard. Settlement posts its expense debit through here: expenses
// above the payment legitimately leave the driver owing the company.
func (d *Driver) PostUnchecked(amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	before := d.balance
	d.balance = before.Add(amount)
	return before, d.balance
}

// Deactivate soft-deletes the driver.
func (d *Driver) Deactivate() {
	d.isActive = false
}

// Activate reverses a soft delete.
func (d *Driver) Activate() {
	d.isActive = true
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// FirstName returns the driver's first name.
func (d *Driver) FirstName() string {
	return d.firstName
}

// LastName returns the driver's last name.
func (d *Driver) LastName() string {
	return d.lastName
}

// FullName returns first and last name joined for display.
func (d *Driver) FullName() string {
	return d.firstName + " " + d.lastName
}

// LicenseNumber returns the unique license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// PhoneNumber returns the driver's phone number.
func (d *Driver) PhoneNumber() string {
	return d.phoneNumber
}

// Email returns the driver's email, if any.
func (d *Driver) Email() string {
	return d.email
}

// VehicleType returns the vehicle type, if any.
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// VehicleNumber returns the vehicle plate, if any.
func (d *Driver) VehicleNumber() string {
	return d.vehicleNumber
}

// Status returns the driver's lifecycle status.
func (d *Driver) Status() Status {
	return d.status
}

// Balance returns the authoritative running balance.
func (d *Driver) Balance() decimal.Decimal {
	return d.balance
}

// IsActive reports whether the driver is soft-deleted.
func (d *Driver) IsActive() bool {
	return d.isActive
}
