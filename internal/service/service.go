package service

import (
	"context"

	"wheel_backend/internal/model"
)

type WheelService interface {
	Spin(ctx context.Context) (*model.SpinOutcome, error)
	WheelData() *model.WheelData
}

type WalletService interface {
	Withdraw(ctx context.Context, req model.WithdrawRequest) (*model.WithdrawResult, error)
	Credit(ctx context.Context, userID int, amount int64, provider, externalRef string) error
	Wallet(ctx context.Context) (*model.Wallet, error)
	Ledger(ctx context.Context, limit int) ([]model.LedgerEntry, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
