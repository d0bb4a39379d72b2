package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors. Concrete error types unwrap to these so callers can
// classify with errors.Is without inspecting the message.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrObjectNotFound      = errors.New("object not found")
	ErrInvalidState        = errors.New("operation is not allowed in current state")
	ErrDuplicateEntry      = errors.New("duplicate entry")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrDriverUnavailable   = errors.New("driver is not available")
	ErrMissingDriver       = errors.New("shipment has no assigned driver")
)

// sanitize strips newlines out of values interpolated into error messages.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named entity and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidStateError indicates an operation is illegal in the entity's current
// lifecycle state, e.g. finishing loading on a queue entry that never started.
type InvalidStateError struct {
	Entity    string
	ID        string
	Current   string
	Attempted string
}

// NewInvalidStateError creates an InvalidStateError describing the rejected transition.
func NewInvalidStateError(entity, id, current, attempted string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, ID: id, Current: current, Attempted: attempted}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s %s is %s, cannot %s",
		ErrInvalidState, sanitize(e.Entity), sanitize(e.ID), sanitize(e.Current), sanitize(e.Attempted))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// DuplicateEntryError indicates a uniqueness violation on a business key,
// e.g. enqueueing a shipment that already has a waiting dock queue entry.
type DuplicateEntryError struct {
	Entity string
	Key    string
}

// NewDuplicateEntryError creates a DuplicateEntryError for the entity and conflicting key.
func NewDuplicateEntryError(entity, key string) *DuplicateEntryError {
	return &DuplicateEntryError{Entity: entity, Key: key}
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("%s: %s with key %s already exists", ErrDuplicateEntry, sanitize(e.Entity), sanitize(e.Key))
}

func (e *DuplicateEntryError) Unwrap() error {
	return ErrDuplicateEntry
}

// InsufficientStockError indicates a reservation or removal exceeds the
// available quantity of a stock record.
type InsufficientStockError struct {
	ProductID   string
	WarehouseID string
	Available   int
	Requested   int
}

// NewInsufficientStockError creates an InsufficientStockError with the conflicting quantities.
func NewInsufficientStockError(productID, warehouseID string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Available:   available,
		Requested:   requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s at warehouse %s, available: %d, requested: %d",
		ErrInsufficientStock, sanitize(e.ProductID), sanitize(e.WarehouseID), e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InsufficientBalanceError indicates a debit would push a driver's balance negative.
type InsufficientBalanceError struct {
	DriverID string
	Balance  decimal.Decimal
	Required decimal.Decimal
}

// NewInsufficientBalanceError creates an InsufficientBalanceError with the current and required amounts.
func NewInsufficientBalanceError(driverID string, balance, required decimal.Decimal) *InsufficientBalanceError {
	return &InsufficientBalanceError{DriverID: driverID, Balance: balance, Required: required}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: driver %s, current: %s, required: %s",
		ErrInsufficientBalance, sanitize(e.DriverID), e.Balance, e.Required)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// DriverUnavailableError indicates a driver cannot be assigned in their current status.
type DriverUnavailableError struct {
	DriverID string
	Status   string
}

// NewDriverUnavailableError creates a DriverUnavailableError for the driver and their status.
func NewDriverUnavailableError(driverID, status string) *DriverUnavailableError {
	return &DriverUnavailableError{DriverID: driverID, Status: status}
}

func (e *DriverUnavailableError) Error() string {
	return fmt.Sprintf("%s: driver %s is %s", ErrDriverUnavailable, sanitize(e.DriverID), sanitize(e.Status))
}

func (e *DriverUnavailableError) Unwrap() error {
	return ErrDriverUnavailable
}
