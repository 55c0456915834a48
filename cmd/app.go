package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"pomodoro/internal/config"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/theme"
	"pomodoro/resources"
)

// application holds what every command opens: config, logger, lock and settings.
type application struct {
	config *config.Config
	logger *slog.Logger
	lock   *platform.InstanceLock
	kv     storage.KV
	store  *settings.Store
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagStore != "" {
		cfg.Store = strings.ToLower(flagStore)
	}
	if flagLogLevel != "" {
		cfg.LogLevel = strings.ToLower(flagLogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, output io.Writer) *slog.Logger {
	level, _ := cfg.Level()
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
}

func openApplication(logOutput io.Writer) (*application, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, logOutput)
	slog.SetDefault(logger)

	app := &application{config: cfg, logger: logger}
	if cfg.SingleInstance && cfg.Store != storage.BackendMemory {
		lock, err := platform.LockDataDir(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		app.lock = lock
	}

	kv, err := storage.Open(cfg.Store, cfg.DataDir)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.kv = kv
	app.store = settings.Open(kv, settings.Options{Logger: logger, Themes: theme.IDs()})
	logger.Debug("settings loaded", "store", cfg.Store, "dir", cfg.DataDir)
	return app, nil
}

func (app *application) newEngine() *timer.Engine {
	player := platform.NewSoundPlayer(platform.CacheDir(config.AppName), resources.Chime(), app.logger)
	return timer.New(app.store, timer.Options{Player: player, Logger: app.logger})
}

// Close releases the store and the data directory lock.
func (app *application) Close() {
	if app.kv != nil {
		if err := app.kv.Close(); err != nil {
			app.logger.Warn("close settings store", "error", err)
		}
	}
	if err := app.lock.Release(); err != nil {
		app.logger.Warn("release data dir lock", "error", err)
	}
}
