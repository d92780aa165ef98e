package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "ceasedesk.yaml"

type Config struct {
	BackendURL string `yaml:"backend_url"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`

	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	MetricsPort           string `yaml:"metrics_port"`

	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`

	BreakerEnabled            bool    `yaml:"breaker_enabled"`
	BreakerMinRequests        uint32  `yaml:"breaker_min_requests"`
	BreakerFailureRatio       float64 `yaml:"breaker_failure_ratio"`
	BreakerOpenTimeoutSeconds int     `yaml:"breaker_open_timeout_seconds"`
	BreakerHalfOpenMaxCalls   uint32  `yaml:"breaker_half_open_max_calls"`
}

func defaults() Config {
	return Config{
		BackendURL: "http://localhost:8000",
		LogLevel:   "info",
		LogFormat:  "json",

		RequestTimeoutSeconds: 60,
		MetricsPort:           "",

		RateLimitPerSecond: 5,
		RateLimitBurst:     5,

		BreakerEnabled:            true,
		BreakerMinRequests:        10,
		BreakerFailureRatio:       0.5,
		BreakerOpenTimeoutSeconds: 30,
		BreakerHalfOpenMaxCalls:   2,
	}
}

// Load builds the configuration in three layers: defaults, then an optional
// YAML file (CEASEDESK_CONFIG, or ./ceasedesk.yaml when present), then
// environment overrides.
func Load() (Config, error) {
	cfg := defaults()

	path := os.Getenv("CEASEDESK_CONFIG")
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// RequestTimeout is the transport-level timeout for one backend call.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c Config) BreakerOpenTimeout() time.Duration {
	return time.Duration(c.BreakerOpenTimeoutSeconds) * time.Second
}

func applyEnv(cfg *Config) {
	cfg.BackendURL = envString("CEASEDESK_BACKEND_URL", cfg.BackendURL)
	cfg.LogLevel = envString("CEASEDESK_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envString("CEASEDESK_LOG_FORMAT", cfg.LogFormat)

	cfg.RequestTimeoutSeconds = envInt("CEASEDESK_REQUEST_TIMEOUT_SECONDS", cfg.RequestTimeoutSeconds)
	cfg.MetricsPort = envString("CEASEDESK_METRICS_PORT", cfg.MetricsPort)

	cfg.RateLimitPerSecond = envFloat("CEASEDESK_RATE_LIMIT_PER_SECOND", cfg.RateLimitPerSecond)
	cfg.RateLimitBurst = envInt("CEASEDESK_RATE_LIMIT_BURST", cfg.RateLimitBurst)

	cfg.BreakerEnabled = envBool("CEASEDESK_BREAKER_ENABLED", cfg.BreakerEnabled)
	cfg.BreakerMinRequests = uint32(envInt("CEASEDESK_BREAKER_MIN_REQUESTS", int(cfg.BreakerMinRequests)))
	cfg.BreakerFailureRatio = envFloat("CEASEDESK_BREAKER_FAILURE_RATIO", cfg.BreakerFailureRatio)
	cfg.BreakerOpenTimeoutSeconds = envInt("CEASEDESK_BREAKER_OPEN_TIMEOUT_SECONDS", cfg.BreakerOpenTimeoutSeconds)
	cfg.BreakerHalfOpenMaxCalls = uint32(envInt("CEASEDESK_BREAKER_HALF_OPEN_MAX_CALLS", int(cfg.BreakerHalfOpenMaxCalls)))
}

func envString(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
