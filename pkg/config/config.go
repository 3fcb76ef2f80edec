// Package config loads and validates filedepot configuration.
//
// Configuration sources, highest precedence first:
//  1. Environment variables (FILEDEPOT_*)
//  2. Configuration file (YAML)
//  3. Default values
//
// Each pluggable store defines its own configuration type; the Config
// struct only carries the selected type name plus an untyped section per
// backend, and the factory functions decode the section matching the
// selected type.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete filedepot configuration.
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging"`

	// Server contains HTTP server settings.
	Server ServerConfig `mapstructure:"server"`

	// Records selects and configures the record store backend.
	Records RecordsConfig `mapstructure:"records"`

	// Sessions selects and configures the session cache backend.
	Sessions SessionsConfig `mapstructure:"sessions"`

	// Payloads selects and configures the payload store backend.
	Payloads PayloadsConfig `mapstructure:"payloads"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive).
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `mapstructure:"port" validate:"required,gt=0,lte=65535"`

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0"`

	// RateLimit is the sustained request rate per second across all
	// clients. Zero disables rate limiting.
	RateLimit uint `mapstructure:"rate_limit"`

	// RateBurst is the burst capacity above RateLimit.
	RateBurst uint `mapstructure:"rate_burst"`
}

// RecordsConfig selects the record store backend.
//
// Only the section matching Type is used.
type RecordsConfig struct {
	// Type specifies which record store implementation to use.
	// Valid values: mongo, memory.
	Type string `mapstructure:"type" validate:"required,oneof=mongo memory"`

	// Mongo contains MongoDB-specific configuration.
	Mongo map[string]any `mapstructure:"mongo"`
}

// SessionsConfig selects the session cache backend.
type SessionsConfig struct {
	// Type specifies which session cache implementation to use.
	// Valid values: badger, memory.
	Type string `mapstructure:"type" validate:"required,oneof=badger memory"`

	// TTL is the session time-to-live measured from token issuance.
	TTL time.Duration `mapstructure:"ttl" validate:"required,gt=0"`

	// Badger contains BadgerDB-specific configuration.
	Badger map[string]any `mapstructure:"badger"`
}

// PayloadsConfig selects the payload store backend.
type PayloadsConfig struct {
	// Type specifies which payload store implementation to use.
	// Valid values: filesystem, s3.
	Type string `mapstructure:"type" validate:"required,oneof=filesystem s3"`

	// Filesystem contains filesystem-specific configuration.
	Filesystem map[string]any `mapstructure:"filesystem"`

	// S3 contains S3-specific configuration.
	S3 map[string]any `mapstructure:"s3"`
}

// Load loads configuration from file, environment, and defaults.
//
// Parameters:
//   - configPath: path to a config file (empty string looks for
//     ./filedepot.yaml and falls back to environment and defaults)
//
// Returns:
//   - *Config: loaded and validated configuration
//   - error: configuration loading or validation error
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures environment variable support and the config file
// location. Environment variables use the FILEDEPOT_ prefix with
// underscores, e.g. FILEDEPOT_SERVER_PORT=8080.
func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("FILEDEPOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("filedepot")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists. A missing file
// is not an error; defaults and environment variables still apply.
func readConfigFile(v *viper.Viper, configPath string) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}
