// Package apperr defines the error taxonomy shared by services and the API
// layer. Handlers match on these sentinels to pick the HTTP status; everything
// else about an error is human-readable context added via wrapping.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("login required")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrBelowMinimum       = errors.New("amount below withdrawal minimum")
	ErrPayoutFailed       = errors.New("payout failed")
	ErrContention         = errors.New("too many concurrent wallet updates")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Storage marks an infrastructure failure so callers can tell it apart from
// business-rule errors. The original error text is preserved for logs.
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

// Kind returns the machine-checkable name for err, or "" if the error is not
// part of the taxonomy.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrBelowMinimum):
		return "below_minimum"
	case errors.Is(err, ErrPayoutFailed):
		return "payout_failed"
	case errors.Is(err, ErrContention):
		return "contention"
	case errors.Is(err, ErrStorageUnavailable):
		return "storage_unavailable"
	}
	return ""
}
