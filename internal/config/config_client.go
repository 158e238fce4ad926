package config

import (
	"fmt"
	"time"
)

// ClientApp holds the token settings the admin CLI needs to mint its own
// admin tokens.
type ClientApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientAdapter holds network settings used by the admin CLI transport.
type ClientAdapter struct {
	// BaseURL is the root URL of the records server.
	BaseURL string
	// RequestTimeout is the default timeout for outbound CLI requests.
	RequestTimeout time.Duration
	// Operator is the token subject identifying the CLI user.
	Operator string
}

// ClientConfig is the admin CLI configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds the admin CLI config from defaults, environment
// variables and the optional JSON file. Command-line flags are owned by the
// CLI itself; the caller applies them and then calls [ClientConfig.Validate].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg), nil
}

// NewClientConfig maps the fields of cfg relevant to the admin CLI.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Operator:       cfg.Adapter.Operator,
		},
	}
}

// Validate checks the CLI config after command-line overrides are applied.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
