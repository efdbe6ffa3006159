package wallet

import (
	"context"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/model"
)

// Wallet returns the caller's current balance and recent spins for display.
func (s *serv) Wallet(ctx context.Context) (*model.Wallet, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}

	return s.store.GetWallet(ctx, userID)
}

// Ledger returns the caller's newest ledger entries, newest first.
func (s *serv) Ledger(ctx context.Context, limit int) ([]model.LedgerEntry, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}

	if limit <= 0 {
		limit = defaultLedgerLimit
	}
	if limit > maxLedgerLimit {
		limit = maxLedgerLimit
	}

	return s.store.Ledger(ctx, userID, limit)
}
