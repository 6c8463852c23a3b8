package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ListenAddr     string        `env:"LISTEN_ADDR" envDefault:":8080"`
	APIBaseURL     string        `env:"TRAVELKIT_API_URL,required"`
	APITimeout     time.Duration `env:"TRAVELKIT_API_TIMEOUT" envDefault:"10s"`
	SessionCookie  string        `env:"SESSION_COOKIE" envDefault:"travelkit_token"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	RefreshEvery   time.Duration `env:"FUNNEL_REFRESH_INTERVAL" envDefault:"5m"`
	FunnelCacheTTL time.Duration `env:"FUNNEL_CACHE_TTL" envDefault:"5m"`
}

// Load parses the environment into a Config. Callers run godotenv first
// so a local .env file behaves like the real environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
