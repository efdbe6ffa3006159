// Package wallet_store implements the per-user atomic transaction primitive
// over the wallet and ledger repositories. A transaction reads one wallet
// snapshot, runs the caller's body against it and commits the collected
// writes in a single database transaction, guarded by the wallet version.
// A lost version race re-runs the body on a fresh snapshot; the body must
// therefore be safe to re-execute.
package wallet_store

import (
	"context"
	"errors"
	"fmt"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// maxAttempts bounds conflict retries. Exhausting it surfaces
// apperr.ErrContention instead of looping forever.
const maxAttempts = 5

type Store struct {
	txManager  trm.Manager
	walletRepo repository.WalletRepository
	ledgerRepo repository.LedgerRepository
	onConflict func()
}

func NewWalletStore(
	txManager trm.Manager,
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
) *Store {
	return &Store{
		txManager:  txManager,
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
	}
}

// OnConflict registers a hook invoked once per retried conflict, used for
// metrics.
func (s *Store) OnConflict(fn func()) {
	s.onConflict = fn
}

// Update runs fn against a fresh snapshot of the user's wallet and commits
// its writes atomically. Errors returned by fn abort the transaction and are
// passed through verbatim; infrastructure failures are classified as
// apperr.ErrStorageUnavailable.
func (s *Store) Update(ctx context.Context, userID int, fn func(tx repository.WalletTx) error) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := s.attempt(ctx, userID, fn)
		if errors.Is(err, repository.ErrConflict) {
			if s.onConflict != nil {
				s.onConflict()
			}
			continue
		}
		return err
	}

	return fmt.Errorf("%w: wallet %d after %d attempts", apperr.ErrContention, userID, maxAttempts)
}

func (s *Store) attempt(ctx context.Context, userID int, fn func(tx repository.WalletTx) error) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		wallet, err := s.walletRepo.GetWallet(txCtx, userID)
		if err != nil {
			return apperr.Storage(err)
		}

		tx := &walletTx{wallet: wallet}
		if err := fn(tx); err != nil {
			return err
		}
		if !tx.dirty {
			return nil
		}

		if err := s.walletRepo.SaveWallet(txCtx, wallet); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return err
			}
			return apperr.Storage(err)
		}

		for i := range tx.entries {
			if err := s.ledgerRepo.AppendEntry(txCtx, &tx.entries[i]); err != nil {
				return apperr.Storage(err)
			}
		}

		return nil
	})
}

func (s *Store) GetWallet(ctx context.Context, userID int) (*model.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return wallet, nil
}

func (s *Store) Ledger(ctx context.Context, userID int, limit int) ([]model.LedgerEntry, error) {
	entries, err := s.ledgerRepo.EntriesByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return entries, nil
}

// walletTx collects the body's writes. Nothing touches the database until
// the body returns nil.
type walletTx struct {
	wallet  *model.Wallet
	entries []model.LedgerEntry
	dirty   bool
}

func (t *walletTx) Wallet() *model.Wallet {
	return t.wallet
}

func (t *walletTx) SetBalance(balance int64) {
	t.wallet.Balance = balance
	t.dirty = true
}

// AppendSpin appends a spin summary and trims the history to the newest
// model.MaxRecentSpins entries, oldest dropped first. The trimmed history is
// a display cache; the ledger keeps the full record.
func (t *walletTx) AppendSpin(summary model.SpinSummary) {
	spins := append(t.wallet.RecentSpins, summary)
	if len(spins) > model.MaxRecentSpins {
		spins = spins[len(spins)-model.MaxRecentSpins:]
	}
	t.wallet.RecentSpins = spins
	t.dirty = true
}

func (t *walletTx) AppendLedger(entry model.LedgerEntry) {
	entry.UserID = t.wallet.UserID
	t.entries = append(t.entries, entry)
	t.dirty = true
}
