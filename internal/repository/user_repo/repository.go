package user_repo

import (
	"context"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - creates a new user row and returns its ID. Balances live in
// the wallets table, created lazily by the first wallet transaction.
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	query := sq.Insert(table).
		Columns(colName, colLogin, colPasswordHash).
		Values(user.Name, user.Login, user.Password).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = db.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - returns the user model (ID, Name, Login, Password) by login.
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	query := sq.Select(colID, colName, colLogin, colPasswordHash).
		From(table).
		Where(sq.Eq{colLogin: login}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = db.QueryRow(ctx, sqlStr, args...).Scan(&user.ID, &user.Name, &user.Login, &user.Password)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
