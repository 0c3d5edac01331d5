// Package session persists the authenticated user and the theme preference
// across restarts. Storage is a small SQLite key-value table; a missing or
// malformed record always reads as "logged out" or the default theme, never
// as an error, so a damaged database cannot block startup.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"smartexpense/internal/core"
	applog "smartexpense/internal/log"
)

const (
	keyCurrentUser = "current_user"
	keyTheme       = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrInvalidTheme = errors.New("invalid theme")

type Store struct {
	db     *sql.DB
	logger *applog.Logger

	mu     sync.Mutex
	active *core.User
}

func Open(dbPath string, logger *applog.Logger) (*Store, error) {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentSession)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveUser persists the user record and sets it as the active session.
func (s *Store) SaveUser(ctx context.Context, u core.User) error {
	encoded, err := json.Marshal(storedUser{ID: u.ID, Username: u.Username, FullName: u.FullName})
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.set(ctx, keyCurrentUser, string(encoded)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	s.mu.Lock()
	s.active = &u
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "session saved", applog.FieldUserID, u.ID)
	return nil
}

// LoadUser reads the persisted session. It reports false when no session
// exists or the stored record cannot be decoded; malformed data is removed
// so the next startup reads cleanly.
func (s *Store) LoadUser(ctx context.Context) (core.User, bool) {
	value, ok := s.get(ctx, keyCurrentUser)
	if !ok {
		return core.User{}, false
	}

	var stored storedUser
	if err := json.Unmarshal([]byte(value), &stored); err != nil || stored.ID <= 0 {
		s.logger.WarnContext(ctx, "discarding malformed session record", applog.FieldError, err)
		_ = s.delete(ctx, keyCurrentUser)
		return core.User{}, false
	}

	u := core.User{ID: stored.ID, Username: stored.Username, FullName: stored.FullName}
	s.mu.Lock()
	s.active = &u
	s.mu.Unlock()
	return u, true
}

// ClearUser removes the persisted record and the active session.
func (s *Store) ClearUser(ctx context.Context) error {
	if err := s.delete(ctx, keyCurrentUser); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()
	s.logger.InfoContext(ctx, "session cleared")
	return nil
}

// ActiveUser returns the in-memory session, if any.
func (s *Store) ActiveUser() (core.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return core.User{}, false
	}
	return *s.active, true
}

// Theme returns the persisted theme preference, defaulting to light.
func (s *Store) Theme(ctx context.Context) string {
	value, ok := s.get(ctx, keyTheme)
	if !ok || (value != ThemeLight && value != ThemeDark) {
		return ThemeLight
	}
	return value
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrInvalidTheme
	}
	if err := s.set(ctx, keyTheme, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

type storedUser struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.WarnContext(ctx, "read key failed", "key", key, applog.FieldError, err)
		}
		return "", false
	}
	return value, true
}

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return err
}

func (s *Store) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}
