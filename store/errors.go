package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that the targeted row does not exist. Not
	// retryable.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart signals a checkout attempt with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError reports malformed customer input. The caller must correct
// the input; retrying unchanged cannot succeed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a storage failure. Transient and safe to retry: the
// store guarantees no partially-applied state is left behind.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// persistence wraps err unless it is already part of the error taxonomy.
func persistence(op string, err error) error {
	var vErr *ValidationError
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrEmptyCart) || errors.As(err, &vErr) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
