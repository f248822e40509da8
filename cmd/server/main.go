package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcoot/r6status/internal/api"
	"github.com/mcoot/r6status/internal/config"
	"github.com/mcoot/r6status/internal/factory"
	"github.com/mcoot/r6status/internal/routes"
	"github.com/mcoot/r6status/internal/services/auth"
	redisstorage "github.com/mcoot/r6status/internal/storage/redis"
)

func main() {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env", slog.String("error", err.Error()))
	}

	appCfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: appCfg.SlogLevel(),
	})).With(
		slog.String("team", appCfg.TeamID),
		slog.String("environment", appCfg.Environment),
	)
	slog.SetDefault(logger)

	// Build factory config
	cfg := factory.Config{
		Logger:      logger,
		StorageType: appCfg.Storage.Type,
		AuthConfig: auth.Config{
			Salt:     appCfg.Auth.PINSalt,
			AdminPIN: appCfg.Auth.AdminPIN,
		},
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = appCfg.Redis.URL
		redisCfg.Team = appCfg.TeamID
		redisCfg.PoolSize = appCfg.Redis.PoolSize
		redisCfg.MinIdleConns = appCfg.Redis.MinIdleConns
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Storage.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	handler := routes.New(routes.Config{
		Logger: logger,
		App:    app,
		Team:   appCfg.TeamID,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = appCfg.HTTP.Host
	serverConfig.Port = appCfg.HTTP.Port
	serverConfig.ReadTimeout = appCfg.HTTP.ReadTimeout
	serverConfig.WriteTimeout = appCfg.HTTP.WriteTimeout
	serverConfig.ShutdownTimeout = appCfg.HTTP.ShutdownTimeout
	server := api.NewServer(handler, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()), slog.String("storage", cfg.StorageType))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			stop()
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
		}
	}

	logger.Info("server stopped")
}
