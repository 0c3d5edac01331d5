package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				APIBaseURL:    "http://localhost:5000/api",
				HTTPTimeout:   15 * time.Second,
				SessionDBPath: "./test.db",
				LogLevel:      "info",
			},
			wantErr: false,
		},
		{
			name: "invalid URL scheme",
			config: Config{
				APIBaseURL:    "ftp://localhost:5000/api",
				HTTPTimeout:   15 * time.Second,
				SessionDBPath: "./test.db",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "invalid API base URL scheme 'ftp': must be 'http' or 'https'",
		},
		{
			name: "URL missing host",
			config: Config{
				APIBaseURL:    "http://",
				HTTPTimeout:   15 * time.Second,
				SessionDBPath: "./test.db",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "missing host",
		},
		{
			name: "timeout too small",
			config: Config{
				APIBaseURL:    "http://localhost:5000/api",
				HTTPTimeout:   100 * time.Millisecond,
				SessionDBPath: "./test.db",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "timeout too large",
			config: Config{
				APIBaseURL:    "http://localhost:5000/api",
				HTTPTimeout:   time.Hour,
				SessionDBPath: "./test.db",
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "must be at most 5 minutes",
		},
		{
			name: "empty session database path",
			config: Config{
				APIBaseURL:  "http://localhost:5000/api",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "session database path cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				APIBaseURL:    "http://localhost:5000/api",
				HTTPTimeout:   15 * time.Second,
				SessionDBPath: "./test.db",
				LogLevel:      "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose': must be one of [debug info warn error]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCreatesDBDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	cfg := Config{
		APIBaseURL:    "http://localhost:5000/api",
		HTTPTimeout:   15 * time.Second,
		SessionDBPath: filepath.Join(dir, "session.db"),
		LogLevel:      "info",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SMARTEXPENSE_API_URL", "")
	t.Setenv("SMARTEXPENSE_HTTP_TIMEOUT", "")
	t.Setenv("SMARTEXPENSE_LOG_LEVEL", "")

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:5000/api" {
		t.Fatalf("default API URL: got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("default timeout: got %v", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level: got %q", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SMARTEXPENSE_API_URL", "https://expense.example.com/api")
	t.Setenv("SMARTEXPENSE_HTTP_TIMEOUT", "30s")

	cfg := Load()
	if cfg.APIBaseURL != "https://expense.example.com/api" {
		t.Fatalf("got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("got %v", cfg.HTTPTimeout)
	}
}
