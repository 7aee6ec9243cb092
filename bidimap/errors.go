package bidimap

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConstructed is the panic value of a write through a nil *Map.
	ErrNotConstructed = errors.New("bidimap: write to nil *Map, create one with New or FromMap")

	// ErrInvariantViolation marks an inconsistency between the forward map and the reverse index.
	// It always points to a bug in this package, never to a misuse by the caller.
	ErrInvariantViolation = errors.New("bidimap: reverse index out of sync")
)

// InvariantError is the panic value raised when a key can not be found in the reverse index
// while the forward map still holds it.
type InvariantError struct {
	Op     string
	Key    any
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("BUG: %s %#v: %s", e.Op, e.Key, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

func newInvariantError(op string, key any, reason string) *InvariantError {
	return &InvariantError{
		Op:     op,
		Key:    key,
		Reason: reason,
	}
}
