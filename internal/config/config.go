package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// AppConfig holds the complete configuration for the server
type AppConfig struct {
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
	TeamID      string        `mapstructure:"team_id"`
	Auth        AuthConfig    `mapstructure:"auth"`
	Storage     StorageConfig `mapstructure:"storage"`
	Redis       RedisConfig   `mapstructure:"redis"`
	HTTP        HTTPConfig    `mapstructure:"http"`
}

// AuthConfig holds the PIN secrets. Both may be empty; PIN operations then
// fail per request.
type AuthConfig struct {
	PINSalt  string `mapstructure:"pin_salt"`
	AdminPIN string `mapstructure:"admin_pin"`
}

type StorageConfig struct {
	Type string `mapstructure:"type"`
}

type RedisConfig struct {
	URL          string `mapstructure:"url"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load loads configuration from an optional file and environment variables
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	// Default values
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("team_id", "default")
	v.SetDefault("auth.pin_salt", "")
	v.SetDefault("auth.admin_pin", "")
	v.SetDefault("storage.type", StorageRedis)
	v.SetDefault("redis.url", "redis://localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("http.host", "")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.shutdown_timeout", 15*time.Second)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Config file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Nested keys need explicit bindings for Unmarshal to see them
	_ = v.BindEnv("environment", "ENVIRONMENT")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("team_id", "TEAM_ID")
	_ = v.BindEnv("auth.pin_salt", "PIN_SALT")
	_ = v.BindEnv("auth.admin_pin", "ADMIN_PIN")
	_ = v.BindEnv("storage.type", "STORAGE_TYPE")
	_ = v.BindEnv("redis.url", "REDIS_URL", "KV_URL")
	_ = v.BindEnv("redis.pool_size", "REDIS_POOL_SIZE")
	_ = v.BindEnv("redis.min_idle_conns", "REDIS_MIN_IDLE_CONNS")
	_ = v.BindEnv("http.host", "HTTP_HOST")
	_ = v.BindEnv("http.port", "HTTP_PORT")
	_ = v.BindEnv("http.read_timeout", "HTTP_READ_TIMEOUT")
	_ = v.BindEnv("http.write_timeout", "HTTP_WRITE_TIMEOUT")
	_ = v.BindEnv("http.shutdown_timeout", "HTTP_SHUTDOWN_TIMEOUT")

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	config.TeamID = strings.TrimSpace(config.TeamID)
	config.Storage.Type = strings.ToLower(strings.TrimSpace(config.Storage.Type))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *AppConfig) Validate() error {
	if c.TeamID == "" {
		return errors.New("team_id is required")
	}
	if strings.ContainsAny(c.TeamID, ": \t\n") {
		return errors.New("team_id must not contain colons or whitespace")
	}
	switch c.Storage.Type {
	case StorageMemory:
	case StorageRedis:
		if c.Redis.URL == "" {
			return errors.New("redis.url is required when storage.type is redis")
		}
		if c.Redis.PoolSize < 0 || c.Redis.MinIdleConns < 0 {
			return errors.New("redis pool settings must not be negative")
		}
	default:
		return fmt.Errorf("storage.type must be %q or %q, got %q", StorageMemory, StorageRedis, c.Storage.Type)
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port out of range: %d", c.HTTP.Port)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level
func (c *AppConfig) SlogLevel() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel maps debug, info, warn and error onto slog levels
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", s)
	}
	return level, nil
}
