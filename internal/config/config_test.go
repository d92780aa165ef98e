package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CEASEDESK_CONFIG", "")
	t.Setenv("CEASEDESK_BACKEND_URL", "")
	t.Setenv("CEASEDESK_RATE_LIMIT_PER_SECOND", "")
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Fatalf("expected default backend url, got %q", cfg.BackendURL)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected logging defaults: %q / %q", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.RequestTimeoutSeconds != 60 {
		t.Fatalf("expected default timeout 60, got %d", cfg.RequestTimeoutSeconds)
	}
	if !cfg.BreakerEnabled || cfg.BreakerFailureRatio != 0.5 {
		t.Fatalf("unexpected breaker defaults: %+v", cfg)
	}
	if cfg.MetricsPort != "" {
		t.Fatalf("metrics must be off by default, got port %q", cfg.MetricsPort)
	}
}

func TestLoadParsesEnvOverrides(t *testing.T) {
	t.Setenv("CEASEDESK_CONFIG", "")
	t.Setenv("CEASEDESK_BACKEND_URL", "https://classifier.internal")
	t.Setenv("CEASEDESK_LOG_LEVEL", "debug")
	t.Setenv("CEASEDESK_REQUEST_TIMEOUT_SECONDS", "15")
	t.Setenv("CEASEDESK_BREAKER_ENABLED", "false")
	t.Setenv("CEASEDESK_METRICS_PORT", "9091")
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BackendURL != "https://classifier.internal" {
		t.Fatalf("backend url = %q", cfg.BackendURL)
	}
	if cfg.LogLevel != "debug" || cfg.RequestTimeoutSeconds != 15 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.BreakerEnabled {
		t.Fatalf("breaker override not applied")
	}
	if cfg.MetricsPort != "9091" {
		t.Fatalf("metrics port = %q", cfg.MetricsPort)
	}
}

func TestLoadReadsYAMLFileWithEnvWinning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ceasedesk.yaml")
	content := []byte("backend_url: https://file.example\nlog_level: warn\nrate_limit_per_second: 2\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CEASEDESK_CONFIG", path)
	t.Setenv("CEASEDESK_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BackendURL != "https://file.example" {
		t.Fatalf("backend url from file = %q", cfg.BackendURL)
	}
	if cfg.RateLimitPerSecond != 2 {
		t.Fatalf("rate limit from file = %v", cfg.RateLimitPerSecond)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("env must win over file, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("backend_url: [oops"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CEASEDESK_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}
