// Package cli provides the initialization steps shared by the program
// entrypoint: environment loading, logging, configuration and the local
// session store.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/joho/godotenv"

	"smartexpense/internal/api"
	"smartexpense/internal/config"
	applog "smartexpense/internal/log"
	"smartexpense/internal/session"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the process logger. The terminal belongs to the
// interface, so log lines go to the configured file, or nowhere when no
// file is set.
func SetupLogger(cfg *config.Config) (*applog.Logger, func(), error) {
	level := applog.ParseLevel(cfg.LogLevel)

	if cfg.LogFile == "" {
		return applog.NewWriter(io.Discard, level, applog.ComponentApp), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := applog.NewWriter(f, level, applog.ComponentApp)
	return logger, func() { _ = f.Close() }, nil
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString("configuration validation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	return cfg
}

// InitSessionStore opens the local SQLite session store.
// Returns the store or exits the process on failure.
func InitSessionStore(logger *applog.Logger, dbPath string) *session.Store {
	store, err := session.Open(dbPath, logger.WithComponent(applog.ComponentSession))
	if err != nil {
		logger.Error("session store init failed", applog.FieldError, err, "path", dbPath)
		os.Stderr.WriteString("failed to open session store: " + err.Error() + "\n")
		os.Exit(1)
	}
	return store
}

// InitAPIClient builds the backend client and probes it in the background,
// logging the outcome. The interface starts regardless; every screen
// degrades to a connectivity toast when the backend is down.
func InitAPIClient(logger *applog.Logger, cfg *config.Config) *api.Client {
	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, logger.WithComponent(applog.ComponentAPI))
	go func() {
		if err := client.Health(context.Background()); err != nil {
			logger.Warn("backend health probe failed", applog.FieldError, err)
			return
		}
		logger.Info("backend reachable", "url", cfg.APIBaseURL)
	}()
	return client
}
