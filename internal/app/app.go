package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"wheel_backend/internal/config"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

type App struct {
	ServiceProvider *ServiceProvider
	log             *slog.Logger
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.log)
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		slog.Warn("no .env file loaded", slog.String("error", err.Error()))
	}

	s.log = setupLogger(os.Getenv("ENV"))
	s.initServiceProvider()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	s.log.Info("starting server", slog.String("address", s.ServiceProvider.HTTPCfg().Address()))

	return http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
}

// setupLogger picks the handler by environment: readable text locally, JSON
// at info level everywhere else.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
