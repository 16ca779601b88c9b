// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers dotenv, YAML file and environment on top of New().
// - Errors are wrapped with this package's sentinel errors.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxItems caps the size of a collection accepted by a single request.
	MaxItems int `koanf:"max_items"`

	// WeightingDimensions are the association dimensions weighted when a
	// request does not name its own.
	WeightingDimensions []string `koanf:"weighting_dimensions"`

	// StatusOrder lists timeline statuses in display order for competitions.
	StatusOrder []string `koanf:"status_order"`

	// ReadTimeoutMS and WriteTimeoutMS bound HTTP request handling.
	ReadTimeoutMS  int `koanf:"read_timeout_ms"`
	WriteTimeoutMS int `koanf:"write_timeout_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           "text",
		Addr:                ":9080",
		MaxItems:            10_000,
		WeightingDimensions: []string{"grades", "competitions"},
		StatusOrder:         []string{"in_progress", "upcoming", "completed", "unknown"},
		ReadTimeoutMS:       10_000,
		WriteTimeoutMS:      10_000,
	}
}

// ReadTimeout returns ReadTimeoutMS as a duration.
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

// WriteTimeout returns WriteTimeoutMS as a duration.
func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutMS) * time.Millisecond
}
