// Package memory holds in-memory implementations of the wallet and ledger
// repositories with the same compare-and-swap semantics as the postgres ones.
// They back the service tests and make the optimistic retry path exercisable
// without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type Storage struct {
	mtx     sync.Mutex
	wallets map[int]*model.Wallet
	ledger  []model.LedgerEntry
	nextID  int64
}

func NewStorage() *Storage {
	return &Storage{
		wallets: make(map[int]*model.Wallet),
		nextID:  1,
	}
}

func (s *Storage) GetWallet(_ context.Context, userID int) (*model.Wallet, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, ok := s.wallets[userID]
	if !ok {
		return &model.Wallet{UserID: userID}, nil
	}

	return cloneWallet(stored), nil
}

func (s *Storage) SaveWallet(_ context.Context, wallet *model.Wallet) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, ok := s.wallets[wallet.UserID]
	if wallet.Version == 0 {
		if ok {
			return repository.ErrConflict
		}
		created := cloneWallet(wallet)
		created.Version = 1
		s.wallets[wallet.UserID] = created
		wallet.Version = 1
		return nil
	}

	if !ok || stored.Version != wallet.Version {
		return repository.ErrConflict
	}

	updated := cloneWallet(wallet)
	updated.Version = wallet.Version + 1
	s.wallets[wallet.UserID] = updated
	wallet.Version = updated.Version
	return nil
}

func (s *Storage) AppendEntry(_ context.Context, entry *model.LedgerEntry) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	entry.ID = s.nextID
	s.nextID++
	if entry.At.IsZero() {
		entry.At = time.Now()
	}
	s.ledger = append(s.ledger, *entry)
	return nil
}

func (s *Storage) EntriesByUser(_ context.Context, userID int, limit int) ([]model.LedgerEntry, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var entries []model.LedgerEntry
	for i := len(s.ledger) - 1; i >= 0 && len(entries) < limit; i-- {
		if s.ledger[i].UserID == userID {
			entries = append(entries, s.ledger[i])
		}
	}
	return entries, nil
}

func cloneWallet(w *model.Wallet) *model.Wallet {
	clone := *w
	clone.RecentSpins = make([]model.SpinSummary, len(w.RecentSpins))
	copy(clone.RecentSpins, w.RecentSpins)
	return &clone
}

// TxManager satisfies trm.Manager without transactional grouping. The wallet
// CAS alone serializes in-memory commits, which is enough for tests.
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
