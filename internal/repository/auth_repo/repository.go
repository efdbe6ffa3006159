package auth_repo

import (
	"context"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "sessions"
	colSessionID   = "session_id"
	colUserID      = "user_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAuthRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSession - stores a session row (ID, UserID, hashed refresh token,
// expiry).
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	query := sq.Insert(table).
		Columns(colSessionID, colUserID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.UserID, session.RefreshToken, session.ExpiresAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	_, err = db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetRefreshTokenBySessionID - returns the stored refresh token hash.
func (r *repo) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	query := sq.Select(colRefreshHash).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var refreshHash string
	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = db.QueryRow(ctx, sqlStr, args...).Scan(&refreshHash)
	if err != nil {
		return "", err
	}

	return refreshHash, nil
}

// DeleteSession - removes the session row for sessionID.
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	query := sq.Delete(table).
		Where(sq.Eq{colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	_, err = db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetUserBySessionID - returns the user model (ID, Name, Login, Password)
// owning the session.
func (r *repo) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	query := sq.Select("u.id", "u.name", "u.login", "u.password_hash").
		From(table+" s").
		Join("users u ON s."+colUserID+" = u.id").
		Where(sq.Eq{"s." + colSessionID: sessionID}).
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
