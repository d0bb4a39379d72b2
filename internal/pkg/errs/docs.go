// Package errs provides standardized error types for the freight network application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//
// Validation errors, raised while constructing value objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//
// Domain errors, raised by business operations:
//   - ObjectNotFoundError: a referenced entity does not resolve
//   - InvalidStateError: an operation is illegal in the entity's current lifecycle state
//   - DuplicateEntryError: a uniqueness violation on a business key
//   - InsufficientStockError: a reservation exceeds available stock
//   - InsufficientBalanceError: a debit would push a driver balance negative
//   - DriverUnavailableError: a driver cannot take a shipment in their current status
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Handlers never retry these errors internally: the enclosing store transaction
// is all-or-nothing, so a failed operation leaves every entity untouched and
// the caller may retry after fixing the triggering condition.
package errs
