package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPIKeyAlt, "")
	t.Setenv("HOME", t.TempDir()) // keep a real ~/.futureself.yaml out of the test

	_, err := Load("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvModel, "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("unexpected api key %q", cfg.APIKey)
	}
	if cfg.MaxAttempts != 3 {
		t.Errorf("expected 3 attempts, got %d", cfg.MaxAttempts)
	}
	if cfg.BackoffBase != time.Second {
		t.Errorf("expected 1s backoff base, got %v", cfg.BackoffBase)
	}
}

func TestLoadLegacyKeyVariable(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPIKeyAlt, "legacy-key")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "legacy-key" {
		t.Errorf("expected fallback to API_KEY, got %q", cfg.APIKey)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "futureself.yaml")
	data := "model: custom-image-model\nmax_attempts: 5\nbackoff_base: 250ms\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "custom-image-model" {
		t.Errorf("unexpected model %q", cfg.Model)
	}
	if cfg.MaxAttempts != 5 {
		t.Errorf("expected 5 attempts, got %d", cfg.MaxAttempts)
	}
	if cfg.BackoffBase != 250*time.Millisecond {
		t.Errorf("expected 250ms backoff base, got %v", cfg.BackoffBase)
	}
}

func TestLoadEnvModelOverridesFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key")
	t.Setenv(EnvModel, "env-model")
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "futureself.yaml")
	if err := os.WriteFile(path, []byte("model: file-model\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "env-model" {
		t.Errorf("expected the environment to win, got %q", cfg.Model)
	}
}
