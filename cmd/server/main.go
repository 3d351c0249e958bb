package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"
	"webdesktop/internal/config"
	"webdesktop/internal/http/server"
	"webdesktop/internal/logger"
	"webdesktop/internal/repository"
	"webdesktop/internal/repository/inmemory"
	"webdesktop/internal/repository/postgres"
	"webdesktop/internal/repository/sqlite"
	"webdesktop/internal/services/auth"
	"webdesktop/internal/services/shortcuts"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.NewLogger(cfg.LogLevel)
	if cfg.GeneratedSecret {
		log.Warn().Msg("Using auto-generated JWT secret key. For production, set JWT_SECRET_KEY environment variable.")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.Config, log *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := initStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	authService, err := auth.NewAuthentication(storage, cfg.JWTSecretKey, cfg.JWTAccessExpire)
	if err != nil {
		return err
	}
	shortcutService := shortcuts.NewService(storage)

	srv, err := server.NewServer(log, *cfg, authService, shortcutService)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("Server stopped")
	return nil
}

func initStorage(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (repository.Storage, error) {
	switch cfg.StorageKind() {
	case config.StoragePostgres:
		log.Info().Msg("Using PostgreSQL storage")
		return postgres.NewStorage(ctx, cfg.DatabaseDSN)
	case config.StorageMemory:
		log.Info().Msg("Using in-memory storage")
		return inmemory.NewStorage(), nil
	default:
		log.Info().Str("path", cfg.DatabaseDSN).Msg("Using SQLite storage")
		return sqlite.NewStorage(ctx, cfg.DatabaseDSN)
	}
}
