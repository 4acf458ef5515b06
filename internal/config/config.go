// Package config loads console configuration from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Env prefixes keep the two consoles' configuration independent, matching
// their independent sessions.
const (
	UserPrefix  = "PAPERTRADE_"
	AdminPrefix = "PAPERTRADE_ADMIN_"
)

// Config holds the settings shared by both consoles.
type Config struct {
	// APIBase is the backend base URL, overridable per app.
	APIBase string `env:"API_BASE, default=http://localhost:8000/api/v1"`
	// CredentialsPath overrides the default credentials file location.
	CredentialsPath string `env:"CREDENTIALS_PATH"`
	// Debug enables structured request/response logging on stderr.
	Debug bool `env:"DEBUG, default=false"`
	// NonInteractive disables prompts (also settable via flag).
	NonInteractive bool `env:"NON_INTERACTIVE, default=false"`
}

// Load reads configuration for the given app prefix.
func Load(ctx context.Context, prefix string) (*Config, error) {
	var cfg Config
	lookuper := envconfig.PrefixLookuper(prefix, envconfig.OsLookuper())
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
