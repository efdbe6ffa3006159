package wheel

import (
	"log/slog"

	"wheel_backend/internal/config"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"
)

type serv struct {
	cfg      config.WheelConfig
	store    repository.WalletStore
	selector *Selector
	log      *slog.Logger
}

// NewWheelService creates the spin engine over the given wallet store. The
// prize table and spin cost come from server config only.
func NewWheelService(
	cfg config.WheelConfig,
	store repository.WalletStore,
	log *slog.Logger,
) service.WheelService {
	return &serv{
		cfg:      cfg,
		store:    store,
		selector: NewSelector(cfg.Prizes(), nil),
		log:      log,
	}
}
