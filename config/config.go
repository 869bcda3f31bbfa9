package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"group-analytics/analytics"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr        string
	GinMode         string
	DBPath          string
	LogLevel        string
	LogFormat       string
	HubPrefix       string
	ShutdownTimeout time.Duration
	RefreshInterval time.Duration
}

// Load reads configuration from the environment. Values from a .env file in the
// working directory are used when present; a missing file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	shutdown, err := getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	refresh, err := getEnvAsDuration("REFRESH_INTERVAL", 0)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8090"),
		GinMode:         getEnv("GIN_MODE", "release"),
		DBPath:          getEnv("DB_PATH", "analytics.db"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "json")),
		HubPrefix:       getEnvRaw("HUB_PREFIX", analytics.DefaultHubPrefix),
		ShutdownTimeout: shutdown,
		RefreshInterval: refresh,
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.GinMode)
	}
	if c.DBPath == "" {
		return errors.New("DB_PATH must not be empty")
	}
	if c.ShutdownTimeout < 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be >= 0")
	}
	if c.RefreshInterval < 0 {
		return errors.New("REFRESH_INTERVAL must be >= 0")
	}
	return nil
}

// AnalyticsOptions maps the configuration onto engine options.
func (c Config) AnalyticsOptions() analytics.Options {
	return analytics.Options{HubPrefix: c.HubPrefix}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// getEnvRaw keeps surrounding whitespace, which is significant for prefixes.
func getEnvRaw(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
