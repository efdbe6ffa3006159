package wallet

import (
	"context"
	"fmt"
	"time"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
)

// Credit adds a confirmed top-up to the wallet and records it in the ledger.
// It is called by the payment webhook layer with an already-verified event,
// so the user ID arrives as an argument rather than from the request context.
// The first credit for a user creates the wallet.
func (s *serv) Credit(ctx context.Context, userID int, amount int64, provider, externalRef string) error {
	if userID <= 0 {
		return fmt.Errorf("%w: missing user id", apperr.ErrInvalidArgument)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: credit amount must be positive", apperr.ErrInvalidArgument)
	}

	err := s.store.Update(ctx, userID, func(tx repository.WalletTx) error {
		tx.SetBalance(tx.Wallet().Balance + amount)
		tx.AppendLedger(model.LedgerEntry{
			Kind:        model.LedgerTopup,
			Amount:      amount,
			Provider:    provider,
			ExternalRef: externalRef,
			At:          time.Now(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("wallet credited",
		"user_id", userID,
		"amount", amount,
		"provider", provider,
	)

	return nil
}
