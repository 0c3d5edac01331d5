package api

import (
	"log/slog"
	"net/http"
	"time"

	applog "smartexpense/internal/log"
)

// loggingTransport records one structured log line per round trip: method,
// path, status and duration. Client errors log at warn, server errors at
// error, so a flaky backend is visible in the log file without drowning it.
type loggingTransport struct {
	next   http.RoundTripper
	logger *applog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *applog.Logger) *loggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		t.logger.Warn("request failed",
			applog.FieldMethod, req.Method,
			applog.FieldPath, req.URL.Path,
			applog.FieldDuration, duration,
			applog.FieldError, err)
		return nil, err
	}

	level := slog.LevelDebug
	switch {
	case resp.StatusCode >= 500:
		level = slog.LevelError
	case resp.StatusCode >= 400:
		level = slog.LevelWarn
	}
	t.logger.Log(req.Context(), level, "request completed",
		applog.FieldComponent, applog.ComponentAPI,
		applog.FieldMethod, req.Method,
		applog.FieldPath, req.URL.Path,
		applog.FieldStatusCode, resp.StatusCode,
		applog.FieldDuration, duration)

	return resp, nil
}
