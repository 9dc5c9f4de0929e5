package redis

import "time"

// Config holds Redis connection settings. An empty ConnectionURL disables
// Redis and the application falls back to in-process caching.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`
	CacheTTL       time.Duration `env:"REDIS_CACHE_TTL" envDefault:"10m"`
}

func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
