package app

import (
	"context"
	"log/slog"

	authAPI "wheel_backend/internal/api/auth"
	paymentAPI "wheel_backend/internal/api/payment"
	walletAPI "wheel_backend/internal/api/wallet"
	wheelAPI "wheel_backend/internal/api/wheel"
	"wheel_backend/internal/client/payout"
	"wheel_backend/internal/config"
	"wheel_backend/internal/config/env"
	"wheel_backend/internal/metrics"
	mw "wheel_backend/internal/middleware"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/repository/auth_repo"
	"wheel_backend/internal/repository/ledger_repo"
	"wheel_backend/internal/repository/user_repo"
	"wheel_backend/internal/repository/wallet_repo"
	"wheel_backend/internal/repository/wallet_store"
	"wheel_backend/internal/service"
	"wheel_backend/internal/service/auth"
	"wheel_backend/internal/service/wallet"
	"wheel_backend/internal/service/wheel"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	log *slog.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Wallet bits
	walletRepo  repository.WalletRepository
	ledgerRepo  repository.LedgerRepository
	walletStore repository.WalletStore
	payoutCfg   config.PayoutConfig
	payoutGW    payout.Gateway
	walletServ  service.WalletService
	walletHand  *walletAPI.Handler
	paymentHand *paymentAPI.Handler

	// Wheel bits
	wheelCfg  config.WheelConfig
	wheelServ service.WheelService
	wheelHand *wheelAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(log *slog.Logger) *ServiceProvider {
	return &ServiceProvider{log: log}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.log,
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
			Log:  sp.log,
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) WalletRepository(ctx context.Context) repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository(sp.DBClient(ctx))
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) LedgerRepository(ctx context.Context) repository.LedgerRepository {
	if sp.ledgerRepo == nil {
		sp.ledgerRepo = ledger_repo.NewLedgerRepository(sp.DBClient(ctx))
	}
	return sp.ledgerRepo
}

func (sp *ServiceProvider) WalletStore(ctx context.Context) repository.WalletStore {
	if sp.walletStore == nil {
		store := wallet_store.NewWalletStore(
			sp.TXManager(ctx),
			sp.WalletRepository(ctx),
			sp.LedgerRepository(ctx),
		)
		store.OnConflict(metrics.WalletConflicts.Inc)
		sp.walletStore = store
	}
	return sp.walletStore
}

func (sp *ServiceProvider) PayoutCfg() config.PayoutConfig {
	if sp.payoutCfg == nil {
		cfg, err := env.NewPayoutConfig()
		if err != nil {
			panic("failed to get payout config: " + err.Error())
		}
		sp.payoutCfg = cfg
	}
	return sp.payoutCfg
}

func (sp *ServiceProvider) PayoutGateway() payout.Gateway {
	if sp.payoutGW == nil {
		sp.payoutGW = payout.NewClient(sp.PayoutCfg(), sp.log)
	}
	return sp.payoutGW
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(sp.WheelCfg(), sp.WalletStore(ctx), sp.log)
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: sp.WheelService(ctx),
			Log:  sp.log,
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewWalletService(
			sp.WheelCfg(),
			sp.WalletStore(ctx),
			sp.PayoutGateway(),
			sp.log,
		)
	}
	return sp.walletServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Serv: sp.WalletService(ctx),
			Log:  sp.log,
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) PaymentHandler(ctx context.Context) *paymentAPI.Handler {
	if sp.paymentHand == nil {
		sp.paymentHand = paymentAPI.NewHandler(paymentAPI.HandlerDeps{
			Serv: sp.WalletService(ctx),
			Log:  sp.log,
		})
	}
	return sp.paymentHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		requireAuth := mw.Auth(sp.JWTCfg(), sp.log)

		// Wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Route("/wheel", func(rr chi.Router) {
			rr.Get("/config", wheelHandler.Config)
			rr.With(requireAuth).Post("/spin", wheelHandler.Spin)
		})

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Route("/wallet", func(rr chi.Router) {
			rr.Use(requireAuth)
			rr.Get("/", walletHandler.Balance)
			rr.Get("/ledger", walletHandler.Ledger)
			rr.Post("/withdraw", walletHandler.Withdraw)
		})

		// Payment provider webhook
		paymentHandler := sp.PaymentHandler(ctx)
		r.Post("/payments/webhook", paymentHandler.Webhook)

		r.Handle("/metrics", metrics.Handler())

		sp.router = r
	}

	return sp.router
}
