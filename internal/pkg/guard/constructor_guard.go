// Package guard implements the constructor guard pattern used by commands,
// queries, and domain objects to reject zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for a guarded object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embedding it in a
// struct allows Validate to distinguish constructor-built instances from zero
// values, which keeps invariants enforced even when callers build commands or
// value objects incorrectly.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built via its constructor, otherwise
// the provided validation error (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
