package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the runtime configuration of the lending desk.
type Config struct {
	LibraryName          string `env:"LIBRARY_NAME" envDefault:"City Public Library"`
	LibraryAddress       string `env:"LIBRARY_ADDRESS" envDefault:"123 Main St, Anytown"`
	SeedCatalog          bool   `env:"LIBRARY_SEED_CATALOG" envDefault:"true"`
	LogLevel             string `env:"LIBRARY_LOG_LEVEL" envDefault:"warn"`
	LogFormat            string `env:"LIBRARY_LOG_FORMAT" envDefault:"text"`
	ObservabilityEnabled bool   `env:"LIBRARY_OBSERVABILITY_ENABLED" envDefault:"false"`
	ServiceName          string `env:"LIBRARY_SERVICE_NAME" envDefault:"librarydesk"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// LoadFrom parses the configuration from the given environment instead of the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// BindFlags registers flags on fs that override the values already in cfg.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.LibraryName, "name", cfg.LibraryName, "library name shown in the banner")
	fs.StringVar(&cfg.LibraryAddress, "address", cfg.LibraryAddress, "library address shown in the banner")
	fs.BoolVar(&cfg.SeedCatalog, "seed", cfg.SeedCatalog, "seed the catalog with sample books and members")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.BoolVar(&cfg.ObservabilityEnabled, "otel", cfg.ObservabilityEnabled, "enable OpenTelemetry tracing, metrics and log bridge")
}

// Validate checks the values that have a fixed set of choices.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}

	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("%w: service name must not be blank", ErrInvalidConfig)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return level, nil
}
