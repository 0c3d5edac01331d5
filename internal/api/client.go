// Package api is the HTTP client for the SmartExpense API. Each operation
// issues exactly one request against a fixed base path and returns either a
// decoded payload or an *Error carrying the failure kind. Nothing is retried
// automatically; every failure surfaces immediately to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"smartexpense/internal/core"
	applog "smartexpense/internal/log"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *applog.Logger

	// Collapses concurrent duplicate reloads of the same user's expenses
	// or limits into a single round trip.
	reload singleflight.Group
}

func New(baseURL string, timeout time.Duration, logger *applog.Logger) *Client {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentAPI)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout:   timeout,
			Transport: newLoggingTransport(http.DefaultTransport, logger),
		},
		logger: logger,
	}
}

// Register creates an account and returns the new user id.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (int64, error) {
	req := registerRequest{Username: email, Password: password, FullName: fullName}
	var resp registerResponse
	if err := c.do(ctx, applog.OpRegister, http.MethodPost, "/register", req, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// Login authenticates and returns the user identity plus display name.
func (c *Client) Login(ctx context.Context, email, password string) (core.User, error) {
	req := loginRequest{Username: email, Password: password}
	var resp loginResponse
	if err := c.do(ctx, applog.OpLogin, http.MethodPost, "/login", req, &resp); err != nil {
		return core.User{}, err
	}
	return core.User{ID: resp.UserID, Username: email, FullName: resp.FullName}, nil
}

// ListExpenses fetches the user's full expense snapshot, newest first.
func (c *Client) ListExpenses(ctx context.Context, userID int64) ([]core.Expense, error) {
	key := fmt.Sprintf("expenses/%d", userID)
	v, err, _ := c.reload.Do(key, func() (any, error) {
		var resp expensesResponse
		path := fmt.Sprintf("/expenses/%d", userID)
		if err := c.do(ctx, applog.OpListExpense, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}
		expenses := make([]core.Expense, 0, len(resp.Expenses))
		for _, we := range resp.Expenses {
			expenses = append(expenses, we.toDomain())
		}
		return expenses, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]core.Expense), nil
}

// CreateExpense records a new expense and returns its server-assigned id.
func (c *Client) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	req := createExpenseRequest{
		UserID:   e.UserID,
		Title:    e.Title,
		Amount:   e.Amount.Units(),
		Category: string(e.Category),
	}
	if strings.TrimSpace(e.Notes) != "" {
		notes := e.Notes
		req.Notes = &notes
	}
	var resp createExpenseResponse
	if err := c.do(ctx, applog.OpAddExpense, http.MethodPost, "/expenses", req, &resp); err != nil {
		return 0, err
	}
	return resp.ExpenseID, nil
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, expenseID int64) error {
	path := fmt.Sprintf("/expenses/%d", expenseID)
	var resp messageResponse
	return c.do(ctx, applog.OpDelExpense, http.MethodDelete, path, nil, &resp)
}

// GetLimits fetches the user's per-category limits. A server 404 becomes
// ErrLimitsNotFound so callers can render the unset state.
func (c *Client) GetLimits(ctx context.Context, userID int64) (core.Limits, error) {
	key := fmt.Sprintf("limits/%d", userID)
	v, err, _ := c.reload.Do(key, func() (any, error) {
		var resp limitsResponse
		path := fmt.Sprintf("/limits/%d", userID)
		if err := c.do(ctx, applog.OpGetLimits, http.MethodGet, path, nil, &resp); err != nil {
			var apiErr *Error
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
				return nil, ErrLimitsNotFound
			}
			return nil, err
		}
		return resp.Limits.toDomain(), nil
	})
	if err != nil {
		return core.Limits{}, err
	}
	return v.(core.Limits), nil
}

// SetLimits submits all five category ceilings atomically.
func (c *Client) SetLimits(ctx context.Context, userID int64, l core.Limits) error {
	req := setLimitsRequest{
		UserID:   userID,
		Food:     l.Food,
		Travel:   l.Travel,
		Shopping: l.Shopping,
		Bills:    l.Bills,
		Other:    l.Other,
	}
	var resp messageResponse
	return c.do(ctx, applog.OpSetLimits, http.MethodPost, "/limits", req, &resp)
}

// Stats fetches server-side aggregate figures over the user's full history.
type Stats struct {
	Count   int
	Total   core.Money
	Minimum core.Money
	Maximum core.Money
	Average core.Money
}

func (c *Client) Stats(ctx context.Context, userID int64) (Stats, error) {
	var resp statsResponse
	path := fmt.Sprintf("/stats/%d", userID)
	if err := c.do(ctx, "stats", http.MethodGet, path, nil, &resp); err != nil {
		return Stats{}, err
	}
	return Stats{
		Count:   resp.Stats.Count,
		Total:   core.FromUnits(resp.Stats.Total),
		Minimum: core.FromUnits(resp.Stats.Minimum),
		Maximum: core.FromUnits(resp.Stats.Maximum),
		Average: core.FromUnits(resp.Stats.Average),
	}, nil
}

// Health probes the server. Used as a startup connectivity check.
func (c *Client) Health(ctx context.Context) error {
	var resp healthResponse
	return c.do(ctx, applog.OpHealth, http.MethodGet, "/health", nil, &resp)
}

// do issues one request and decodes the response into out. All failures are
// reported as *Error with the appropriate kind.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Kind: KindConnection, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Op: op, Kind: KindConnection, Err: fmt.Errorf("build request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Op: op, Kind: KindConnection, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody errorResponse
		message := ""
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			message = errBody.Error
		}
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &Error{Op: op, Kind: KindServer, Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Op: op, Kind: KindConnection, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}
