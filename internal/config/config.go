package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

// AppName names the data and cache directories.
const AppName = "pomodoro"

var (
	// ErrInvalidStore is returned when the store backend is not one of yaml, sqlite, memory.
	ErrInvalidStore = errors.New("store must be yaml, sqlite or memory")

	// ErrInvalidLogLevel is returned when the log level is not debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("log level must be debug, info, warn or error")
)

type Config struct {
	DataDir  string
	Store    string
	LogLevel string
	// Refuse to start when another process holds DataDir.
	SingleInstance bool
}

// Load reads configuration from POMODORO_* environment variables.
func Load() (*Config, error) {
	dataDir := envStr("POMODORO_DATA_DIR", "")
	if dataDir == "" {
		dir, err := platform.ConfigDir(AppName)
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		dataDir = dir
	}

	cfg := &Config{
		DataDir:        dataDir,
		Store:          strings.ToLower(envStr("POMODORO_STORE", storage.BackendYAML)),
		LogLevel:       strings.ToLower(envStr("POMODORO_LOG_LEVEL", "info")),
		SingleInstance: envBool("POMODORO_SINGLE_INSTANCE", true),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields a flag override may have changed.
func (c *Config) Validate() error {
	switch c.Store {
	case storage.BackendYAML, storage.BackendSQLite, storage.BackendMemory:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidStore, c.Store)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.DataDir == "" && c.Store != storage.BackendMemory {
		return fmt.Errorf("data dir must not be empty for %s store", c.Store)
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w, got %q", ErrInvalidLogLevel, c.LogLevel)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
