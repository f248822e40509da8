package redis

// Config holds Redis connection and keyspace settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Team scopes all keys (r6:<team>:...)
	Team string

	// Pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Team:         "default",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}
