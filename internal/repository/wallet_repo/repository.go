package wallet_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "wallets"
	colUserID      = "user_id"
	colBalance     = "balance"
	colRecentSpins = "recent_spins"
	colVersion     = "version"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewWalletRepository(dbc *pgxpool.Pool) repository.WalletRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetWallet - reads the wallet row for a user. A missing row is not an
// error: it comes back as a zero wallet with Version 0, which SaveWallet
// turns into an insert.
func (r *repo) GetWallet(ctx context.Context, userID int) (*model.Wallet, error) {
	query := sq.Select(colBalance, colRecentSpins, colVersion).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	wallet := model.Wallet{UserID: userID}
	var recentRaw []byte

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = db.QueryRow(ctx, sqlStr, args...).Scan(&wallet.Balance, &recentRaw, &wallet.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &wallet, nil
		}
		return nil, err
	}

	if len(recentRaw) > 0 {
		if err := json.Unmarshal(recentRaw, &wallet.RecentSpins); err != nil {
			return nil, fmt.Errorf("decode recent spins: %w", err)
		}
	}

	return &wallet, nil
}

// SaveWallet - commits the wallet with a compare-and-swap on the version
// column. Version 0 inserts the row; any lost race surfaces as
// repository.ErrConflict so the caller can retry from a fresh read.
func (r *repo) SaveWallet(ctx context.Context, wallet *model.Wallet) error {
	recentRaw, err := json.Marshal(wallet.RecentSpins)
	if err != nil {
		return fmt.Errorf("encode recent spins: %w", err)
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)

	if wallet.Version == 0 {
		query := sq.Insert(table).
			Columns(colUserID, colBalance, colRecentSpins, colVersion).
			Values(wallet.UserID, wallet.Balance, recentRaw, 1).
			Suffix("ON CONFLICT (" + colUserID + ") DO NOTHING").
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		tag, err := db.Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrConflict
		}
		return nil
	}

	query := sq.Update(table).
		Set(colBalance, wallet.Balance).
		Set(colRecentSpins, recentRaw).
		Set(colVersion, wallet.Version+1).
		Where(sq.Eq{colUserID: wallet.UserID, colVersion: wallet.Version}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrConflict
	}

	return nil
}
