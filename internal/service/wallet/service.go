package wallet

import (
	"log/slog"

	"wheel_backend/internal/client/payout"
	"wheel_backend/internal/config"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"
)

const (
	defaultLedgerLimit = 50
	maxLedgerLimit     = 200
)

type serv struct {
	cfg     config.WheelConfig
	store   repository.WalletStore
	gateway payout.Gateway
	log     *slog.Logger
}

func NewWalletService(
	cfg config.WheelConfig,
	store repository.WalletStore,
	gateway payout.Gateway,
	log *slog.Logger,
) service.WalletService {
	return &serv{
		cfg:     cfg,
		store:   store,
		gateway: gateway,
		log:     log,
	}
}
