package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings sourced from the environment.
// Variables carry the GENAI_FACTORY_ prefix.
type Config struct {
	// BaseURL is the controller address without the /api suffix.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8001"`

	// Username is sent as x-username; the controller's guest identity
	// applies when empty.
	Username string `envconfig:"USERNAME" default:""`

	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	RetryAttempts int           `envconfig:"RETRY_ATTEMPTS" default:"1"`
	Debug         bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads the GENAI_FACTORY_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("GENAI_FACTORY", &cfg); err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}
	return &cfg, nil
}

// NewFromEnv constructs a Client from the environment. Explicit opts are
// applied after the config-derived ones and win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.NewClient(opts...)
}

// NewClient builds a Client from an already-loaded Config.
func (cfg *Config) NewClient(opts ...Option) (*Client, error) {
	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithRetry(cfg.RetryAttempts),
		WithDebugLogging(cfg.Debug),
	}
	if cfg.Username != "" {
		base = append(base, WithUsername(cfg.Username))
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}
