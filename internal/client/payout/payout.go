// Package payout talks to the external disbursement provider that moves
// real money out to a named recipient.
package payout

import (
	"context"
	"errors"
)

// ErrDeclined means the provider answered and refused the disbursement; no
// money moved.
var ErrDeclined = errors.New("payout declined by provider")

// ErrOutcomeUnknown means no definitive answer arrived (timeout, transport
// failure). The disbursement may or may not have happened, so callers must
// not treat it as success and must not debit.
var ErrOutcomeUnknown = errors.New("payout outcome unknown")

type DisburseRequest struct {
	Amount     int64
	Provider   string
	PayeeName  string
	PayeePhone string
	// IdempotencyKey is generated once per withdraw request. The provider
	// deduplicates on it, so re-sending after a local conflict retry cannot
	// disburse twice.
	IdempotencyKey string
}

type DisburseResult struct {
	ExternalRef string
}

type Gateway interface {
	Disburse(ctx context.Context, req DisburseRequest) (*DisburseResult, error)
}
