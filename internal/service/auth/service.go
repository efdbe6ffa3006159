package auth

import (
	"log/slog"

	"wheel_backend/internal/config"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	log       *slog.Logger
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	log *slog.Logger,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
		log:       log,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
