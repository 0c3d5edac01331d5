package session

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"smartexpense/internal/core"
	applog "smartexpense/internal/log"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	logger := applog.NewWriter(io.Discard, 0, applog.ComponentSession)
	s, err := Open(filepath.Join(t.TempDir(), "session.db"), logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	user := core.User{ID: 7, Username: "jane@example.com", FullName: "Jane Doe"}
	if err := s.SaveUser(ctx, user); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok := s.LoadUser(ctx)
	if !ok {
		t.Fatal("expected a session")
	}
	if loaded != user {
		t.Fatalf("got %+v, want %+v", loaded, user)
	}

	active, ok := s.ActiveUser()
	if !ok || active != user {
		t.Fatalf("active user: got %+v, %v", active, ok)
	}
}

func TestLoadUserAbsent(t *testing.T) {
	s := testStore(t)
	if _, ok := s.LoadUser(context.Background()); ok {
		t.Fatal("fresh store must read as logged out")
	}
}

func TestClearUser(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.SaveUser(ctx, core.User{ID: 7, Username: "jane@example.com"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.ClearUser(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := s.LoadUser(ctx); ok {
		t.Fatal("load after clear must read as logged out")
	}
	if _, ok := s.ActiveUser(); ok {
		t.Fatal("active user must be gone after clear")
	}
}

func TestLoadUserMalformedTreatedAsAbsent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.set(ctx, keyCurrentUser, "{not json"); err != nil {
		t.Fatalf("seed malformed value: %v", err)
	}
	if _, ok := s.LoadUser(ctx); ok {
		t.Fatal("malformed record must read as logged out")
	}
	// The bad record is discarded, not kept around.
	if _, ok := s.get(ctx, keyCurrentUser); ok {
		t.Fatal("malformed record should have been removed")
	}
}

func TestLoadUserMissingIDTreatedAsAbsent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.set(ctx, keyCurrentUser, `{"username":"jane@example.com"}`); err != nil {
		t.Fatalf("seed value: %v", err)
	}
	if _, ok := s.LoadUser(ctx); ok {
		t.Fatal("record without a user id must read as logged out")
	}
}

func TestThemeDefaultsToLight(t *testing.T) {
	s := testStore(t)
	if got := s.Theme(context.Background()); got != ThemeLight {
		t.Fatalf("got %q", got)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.SetTheme(ctx, ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if got := s.Theme(ctx); got != ThemeDark {
		t.Fatalf("got %q", got)
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	s := testStore(t)
	if err := s.SetTheme(context.Background(), "solarized"); err == nil {
		t.Fatal("expected error")
	}
}

func TestThemeGarbageValueFallsBack(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	if err := s.set(ctx, keyTheme, "neon"); err != nil {
		t.Fatalf("seed value: %v", err)
	}
	if got := s.Theme(ctx); got != ThemeLight {
		t.Fatalf("got %q", got)
	}
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.db")
	logger := applog.NewWriter(io.Discard, 0, applog.ComponentSession)
	ctx := context.Background()

	s1, err := Open(path, logger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	user := core.User{ID: 3, Username: "sam@example.com", FullName: "Sam Smith"}
	if err := s1.SaveUser(ctx, user); err != nil {
		t.Fatalf("save: %v", err)
	}
	s1.Close()

	s2, err := Open(path, logger)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	loaded, ok := s2.LoadUser(ctx)
	if !ok || loaded != user {
		t.Fatalf("got %+v, %v", loaded, ok)
	}
}
