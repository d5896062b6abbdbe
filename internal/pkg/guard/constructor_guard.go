// Package guard provides a tiny helper for enforcing that domain objects are
// created through their constructor functions rather than as zero values.
//
// A ConstructorGuard embedded in a struct is set by the constructor; the zero
// value fails Validate. This keeps invariants established at construction time
// from being bypassed by direct struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no object-specific
// error is supplied and the guard is a zero value.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owning object went through a constructor.
// The zero value is "not constructed"; NewConstructorGuard returns a
// constructed guard. The guard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
