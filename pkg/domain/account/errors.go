package account

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an operation receives malformed input:
	// a non-positive amount, an empty owner name or a nil transfer target.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInactiveAccount is returned when a balance-mutating operation is invoked on a deactivated account.
	ErrInactiveAccount = errors.New("account is not active")

	// ErrInsufficientFunds is returned when a withdrawal would drive the balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InsufficientFundsError carries the requested amount and the balance that was
// available when a withdrawal was rejected. It matches ErrInsufficientFunds.
type InsufficientFundsError struct {
	Requested float64
	Available float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: requested %g, available %g", ErrInsufficientFunds, e.Requested, e.Available)
}

// Is reports whether target is ErrInsufficientFunds.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

func invalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}
