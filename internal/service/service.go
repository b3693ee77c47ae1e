package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/api/handlers"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/config"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/dbmanager"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/model"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/repo"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/router"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/service/accounts"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/service/favorites"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/auth"
	"github.com/ArnobDas57/GitHub-Repo-Explorer/internal/utils/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	migrateTimeout    = 30 * time.Second
)

type app struct {
	server    *http.Server
	dbManager *dbmanager.DBManager
	cfg       *config.Config
}

func initService(log *slog.Logger, args []string) (*app, error) {
	cfg, err := config.NewBuilder(log).
		FromDotEnv().
		FromEnv().
		FromFlags(args).
		Build()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log = logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(log)

	tokens, err := auth.NewTokenService(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	dbManager := dbmanager.New(cfg.DatabaseURI, log).
		Connect(ctx).
		Ping(ctx).
		ApplyMigrations(ctx)
	if err = dbManager.Error(); err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("db connection error: %w", err)
	}

	db, err := dbManager.GetPool(ctx)
	if err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("failed to get DB pool: %w", err)
	}

	accountService, err := accounts.New(
		repo.NewUserRepository(db, log),
		tokens,
		auth.NewPasswordService(cfg.BcryptCost).WithConcurrencyLimit(cfg.BcryptConcurrency),
		cfg.TokenTTL,
	)
	if err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("account service: %w", err)
	}
	favoriteService := favorites.New(repo.NewFavoriteRepository(db, log))

	rr := router.New(cfg, log)
	rr.SetRouter(
		handlers.New(
			handlers.NewAuthHandler(accountService, cfg.PasswordMinEntropy),
			handlers.NewFavoriteHandler(favoriteService),
			handlers.NewHealthHandler(dbManager),
		),
		tokens,
	)

	return &app{
		server: &http.Server{
			Addr:              cfg.RunAddr,
			Handler:           rr.GetRouter(),
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
			ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
		},
		dbManager: dbManager,
		cfg:       cfg,
	}, nil
}

// RunServer serves until SIGINT or SIGTERM, then drains in-flight
// requests for at most SHUTDOWN_TIMEOUT.
func RunServer() error {
	log := slog.Default()
	a, err := initService(log, os.Args[1:])
	if err != nil {
		log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to init service",
			slog.Any(model.KeyLoggerError, err),
		)
		return err
	}
	defer a.dbManager.Close()
	log = slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx, log)
}

func (a *app) run(ctx context.Context, log *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		log.LogAttrs(ctx, slog.LevelInfo, "server started",
			slog.String("addr", a.server.Addr))
		serverErr <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.LogAttrs(context.TODO(),
			slog.LevelError,
			"listen and serve error",
			slog.Any(model.KeyLoggerError, err),
		)
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
		log.LogAttrs(context.TODO(), slog.LevelInfo, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.LogAttrs(context.TODO(),
			slog.LevelError,
			"graceful shutdown failed",
			slog.Any(model.KeyLoggerError, err),
		)
		return fmt.Errorf("shutdown: %w", err)
	}
	log.LogAttrs(context.TODO(), slog.LevelInfo, "server stopped")
	return nil
}
