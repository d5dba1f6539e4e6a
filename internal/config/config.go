// Package config loads zoomdl configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything a sweep needs. Values are parsed from environment
// variables with the ZOOMDL_ prefix, e.g. ZOOMDL_API_KEY, ZOOMDL_DOWNLOAD_DIR.
type Config struct {
	// Account credentials. Both are required; the process refuses to start
	// without them.
	APIKey    string `envconfig:"API_KEY" required:"true"`
	APISecret string `envconfig:"API_SECRET" required:"true"`

	// API surface.
	BaseURL  string `envconfig:"BASE_URL" default:"https://api.zoom.us/v2"`
	PageSize int    `envconfig:"PAGE_SIZE" default:"300"`

	// Local state.
	DownloadDir string `envconfig:"DOWNLOAD_DIR" default:"downloads"`
	LedgerPath  string `envconfig:"LEDGER_PATH" default:"completed_downloads.txt"`

	// TokenTTL bounds each minted auth token. Tokens are minted per request,
	// so the TTL only has to outlive server-side validation of that request.
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"4s"`

	// HTTPTimeout of zero leaves the HTTP library default in place.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0"`
}

// New reads a .env file if one is present, then parses the environment.
// A missing required variable is returned as an error; callers treat it as
// fatal before any network activity.
func New() (*Config, error) {
	// Overlay only: existing environment variables win over .env entries.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("ZOOMDL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	// envconfig's required tag only fires when the variable is absent; a
	// present-but-empty entry (common with blank .env lines) must be just as
	// fatal before any network activity.
	if c.APIKey == "" {
		return fmt.Errorf("ZOOMDL_API_KEY is required")
	}
	if c.APISecret == "" {
		return fmt.Errorf("ZOOMDL_API_SECRET is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}
