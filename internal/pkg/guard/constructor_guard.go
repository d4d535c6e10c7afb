// Package guard implements the constructor-guard pattern used by entities,
// aggregates, and commands to reject zero-value instances that bypassed
// their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// Embed it in a struct and initialize it with NewConstructorGuard inside the
// constructor; Validate then fails for any instance created another way.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed holder.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
