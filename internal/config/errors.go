package config

import (
	"errors"
)

// Sentinel error kinds returned by Load and Validate.
var (
	// ErrInvalidConfig marks a configuration that loaded but failed validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig marks a failure reading the dotenv file, YAML file or environment.
	ErrLoadConfig = errors.New("load config failed")
)
