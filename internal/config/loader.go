package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/scorecard/internal/domain/timeline"
)

const (
	envPrefix     = "SCORECARD_"
	envConfigFile = envPrefix + "CONFIG"
	envDotenvFile = envPrefix + "DOTENV"
	defaultDotenv = ".env"
)

// listKeys are flat keys whose env values are comma separated lists.
var listKeys = map[string]bool{ //nolint:gochecknoglobals // read-only lookup
	"weighting_dimensions": true,
	"status_order":         true,
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SCORECARD_CONFIG is set
//  3. env (prefix SCORECARD_), after SCORECARD_DOTENV or ./.env is applied
//
// Variables already present in the process environment win over dotenv ones.
func Load(_ context.Context) (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	base := New()
	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	// SCORECARD_MAX_ITEMS -> max_items; list keys split on commas.
	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(envPrefix))
		if key == "config" || key == "dotenv" {
			return "", nil
		}
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxItems < 1:
		return fmt.Errorf("%w: max_items must be positive, got %d", ErrInvalidConfig, c.MaxItems)
	case c.ReadTimeoutMS < 1 || c.WriteTimeoutMS < 1:
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if len(c.StatusOrder) > 0 {
		if _, err := timeline.ParseStatusOrder(c.StatusOrder); err != nil {
			return fmt.Errorf("%w: status_order: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// loadDotenv applies SCORECARD_DOTENV if set, otherwise ./.env when present.
func loadDotenv() error {
	path, explicit := os.LookupEnv(envDotenvFile)
	if !explicit || path == "" {
		path = defaultDotenv
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: dotenv %s: %w", ErrLoadConfig, path, err)
	}
	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
