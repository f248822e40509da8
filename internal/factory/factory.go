package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/r6status/internal/dependencies/clock"
	"github.com/mcoot/r6status/internal/dependencies/random"
	"github.com/mcoot/r6status/internal/services/auth"
	"github.com/mcoot/r6status/internal/services/status"
	"github.com/mcoot/r6status/internal/storage"
	"github.com/mcoot/r6status/internal/storage/memory"
	redisstorage "github.com/mcoot/r6status/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService   *auth.Service
	StatusService *status.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds the PIN salt and admin PIN (optional)
	// Missing secrets surface per request as auth.ErrMisconfigured
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	authService := auth.New(cfg.AuthConfig)
	if !authService.PlayerPINsEnabled() {
		logger.Warn("PIN_SALT is not set; PIN operations will fail")
	} else if !authService.AdminEnabled() {
		logger.Warn("ADMIN_PIN is not set; roster changes will fail")
	}

	return newWithDependencies(store, clock.New(), random.New(), authService, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authService *auth.Service, logger *slog.Logger) *App {
	statusService := status.New(store, authService, clk, rnd, logger)

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		AuthService:   authService,
		StatusService: statusService,
	}
}
