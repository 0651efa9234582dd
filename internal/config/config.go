package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultBindAddress is used when BIND_ADDRESS is unset or empty
const DefaultBindAddress = "0.0.0.0:8000"

// Config holds all configuration for the Open Context Vault API
type Config struct {
	// Server configuration
	BindAddress string `env:"BIND_ADDRESS" envDefault:"0.0.0.0:8000" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`

	// mem0 configuration
	Mem0 Mem0Config

	// Metrics configuration
	Metrics MetricsConfig

	// Timeouts
	Timeouts TimeoutConfig
}

// Mem0Config holds the external memory service credential.
// The credential is only ever checked for presence.
type Mem0Config struct {
	APIKey string `env:"BASIC_MEM0_API_KEY"`
}

// Configured reports whether a mem0 credential was supplied
func (m Mem0Config) Configured() bool {
	return m.APIKey != ""
}

// MetricsConfig holds the Prometheus listener configuration
type MetricsConfig struct {
	// Address is the host:port of the metrics listener. Empty disables it.
	Address string `env:"METRICS_ADDRESS"`
}

// Enabled reports whether the metrics listener should be started
func (m MetricsConfig) Enabled() bool {
	return m.Address != ""
}

// TimeoutConfig holds various timeout configurations
type TimeoutConfig struct {
	ReadHeader time.Duration `env:"TIMEOUT_READ_HEADER" envDefault:"10s" validate:"gte=0"`
	Shutdown   time.Duration `env:"TIMEOUT_SHUTDOWN" envDefault:"30s" validate:"gt=0"`
}

// Load reads .env files, then configuration from environment variables
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	return parse(env.Options{})
}

// parse builds a Config from the environment described by opts
func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.BindAddress == "" {
		cfg.BindAddress = DefaultBindAddress
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadEnvFiles loads ENV_FILE when set, otherwise .env.local and .env.
// Missing files are ignored and variables already present are kept.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
