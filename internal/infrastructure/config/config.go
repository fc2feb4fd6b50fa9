package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret-change-me"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL bounds how long an issued credential stays valid. There is no
	// revocation, so this is the only limit on a leaked token.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=1h"`

	// FrontendDir, when set, is served as static assets from the site root.
	FrontendDir string `env:"FRONTEND_DIR"`

	// SeedDemoData loads the 30-shipment demo dataset at startup.
	SeedDemoData bool `env:"SEED_DEMO_DATA, default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
