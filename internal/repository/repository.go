package repository

import (
	"context"
	"errors"

	"wheel_backend/internal/model"
)

// ErrConflict reports that a wallet write lost an optimistic concurrency race
// and the whole transaction should be retried from a fresh snapshot.
var ErrConflict = errors.New("wallet version conflict")

type WalletRepository interface {
	// GetWallet returns the wallet for userID, or a zero-balance wallet with
	// Version 0 when no row exists yet (wallets are created on first commit).
	GetWallet(ctx context.Context, userID int) (*model.Wallet, error)
	// SaveWallet commits the wallet if its Version still matches the stored
	// row (insert for Version 0) and returns ErrConflict otherwise.
	SaveWallet(ctx context.Context, wallet *model.Wallet) error
}

type LedgerRepository interface {
	AppendEntry(ctx context.Context, entry *model.LedgerEntry) error
	EntriesByUser(ctx context.Context, userID int, limit int) ([]model.LedgerEntry, error)
}

// WalletTx is the per-key transaction body handed to WalletStore.Update.
// Reads see a consistent snapshot; writes are committed atomically or not
// at all.
type WalletTx interface {
	Wallet() *model.Wallet
	SetBalance(balance int64)
	AppendSpin(summary model.SpinSummary)
	AppendLedger(entry model.LedgerEntry)
}

// WalletStore is the atomic read-modify-write primitive over one wallet.
// Update retries fn transparently on write conflicts, so fn must be safe to
// re-run; after bounded retries it fails with apperr.ErrContention.
type WalletStore interface {
	Update(ctx context.Context, userID int, fn func(tx WalletTx) error) error
	GetWallet(ctx context.Context, userID int) (*model.Wallet, error)
	Ledger(ctx context.Context, userID int, limit int) ([]model.LedgerEntry, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}
