package ledger_repo

import (
	"context"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "wallet_ledger"
	colID          = "id"
	colUserID      = "user_id"
	colKind        = "kind"
	colAmount      = "amount"
	colCost        = "cost"
	colProvider    = "provider"
	colExternalRef = "external_ref"
	colPayeeName   = "payee_name"
	colPayeePhone  = "payee_phone"
	colAt          = "at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AppendEntry - inserts one ledger row. The table is append-only: nothing in
// the codebase updates or deletes from it.
func (r *repo) AppendEntry(ctx context.Context, entry *model.LedgerEntry) error {
	query := sq.Insert(table).
		Columns(colUserID, colKind, colAmount, colCost, colProvider, colExternalRef, colPayeeName, colPayeePhone, colAt).
		Values(entry.UserID, string(entry.Kind), entry.Amount, entry.Cost, entry.Provider, entry.ExternalRef, entry.PayeeName, entry.PayeePhone, entry.At).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = db.QueryRow(ctx, sqlStr, args...).Scan(&entry.ID)
	if err != nil {
		return err
	}

	return nil
}

// EntriesByUser - returns the newest ledger entries for a user, newest first.
func (r *repo) EntriesByUser(ctx context.Context, userID int, limit int) ([]model.LedgerEntry, error) {
	query := sq.Select(colID, colKind, colAmount, colCost, colProvider, colExternalRef, colPayeeName, colPayeePhone, colAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colID + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LedgerEntry
	for rows.Next() {
		entry := model.LedgerEntry{UserID: userID}
		var kind string
		err = rows.Scan(&entry.ID, &kind, &entry.Amount, &entry.Cost, &entry.Provider, &entry.ExternalRef, &entry.PayeeName, &entry.PayeePhone, &entry.At)
		if err != nil {
			return nil, err
		}
		entry.Kind = model.LedgerKind(kind)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
