// Package config builds the single configuration object constructed at
// startup and passed by reference into the orchestrator and the service
// client. There is no ambient lookup: the API credential is resolved here and
// nowhere else, and its absence is fatal before any engine operation runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is the fatal startup condition: no generation call may be
// attempted without the credential.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set; the image service cannot be reached")

// Environment variables consulted by Load.
const (
	EnvAPIKey    = "GEMINI_API_KEY"
	EnvAPIKeyAlt = "API_KEY"
	EnvModel     = "FUTURESELF_MODEL"
)

// Config holds all futureself configuration.
type Config struct {
	// APIKey is the Gemini credential. Required.
	APIKey string

	// Model overrides the image model name.
	Model string

	// MaxAttempts bounds each logical generation request.
	MaxAttempts int

	// BackoffBase is the linear backoff unit between attempts.
	BackoffBase time.Duration

	// Verbose enables debug logging.
	Verbose bool
}

// fileConfig is the on-disk YAML shape. Durations are strings so the file
// stays human-editable ("1s", "250ms").
type fileConfig struct {
	Model       string `yaml:"model"`
	MaxAttempts int    `yaml:"max_attempts"`
	BackoffBase string `yaml:"backoff_base"`
	Verbose     bool   `yaml:"verbose"`
}

// Default returns the built-in configuration (before file and env merging).
func Default() Config {
	return Config{
		MaxAttempts: 3,
		BackoffBase: 1 * time.Second,
	}
}

// Load resolves configuration in order: defaults, optional YAML file, then
// the environment. A .env file in the working directory is honored for the
// credential. path may be empty, in which case ~/.futureself.yaml is used
// when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".futureself.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if fc.Model != "" {
			cfg.Model = fc.Model
		}
		if fc.MaxAttempts > 0 {
			cfg.MaxAttempts = fc.MaxAttempts
		}
		if fc.BackoffBase != "" {
			d, err := time.ParseDuration(fc.BackoffBase)
			if err != nil {
				return nil, fmt.Errorf("invalid backoff_base in %s: %w", path, err)
			}
			cfg.BackoffBase = d
		}
		if fc.Verbose {
			cfg.Verbose = true
		}
	}

	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model = v
	}

	cfg.APIKey = os.Getenv(EnvAPIKey)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(EnvAPIKeyAlt)
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 1 * time.Second
	}

	return &cfg, nil
}
