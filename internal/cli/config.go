package cli

import (
	"os"
	"time"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Timeout   time.Duration
	// AdminPIN is read from the environment only, never from a flag default
	AdminPIN string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("R6STATUS_SERVER", "http://localhost:8080"),
		Output:    "text",
		Timeout:   10 * time.Second,
		AdminPIN:  os.Getenv("R6STATUS_ADMIN_PIN"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
