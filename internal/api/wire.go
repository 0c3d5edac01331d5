package api

import (
	"time"

	"smartexpense/internal/core"
)

// Request and response bodies, field names matching the server exactly.

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	FullName string `json:"fullName"`
}

type wireExpense struct {
	ExpenseID   int64   `json:"expense_id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Notes       *string `json:"notes"`
	DateCreated string  `json:"date_created"`
}

type expensesResponse struct {
	Expenses []wireExpense `json:"expenses"`
}

type createExpenseRequest struct {
	UserID   int64   `json:"user_id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Notes    *string `json:"notes"`
}

type createExpenseResponse struct {
	Message   string `json:"message"`
	ExpenseID int64  `json:"expense_id"`
}

type wireLimits struct {
	Food     int64 `json:"food"`
	Travel   int64 `json:"travel"`
	Shopping int64 `json:"shopping"`
	Bills    int64 `json:"bills"`
	Other    int64 `json:"other"`
}

type limitsResponse struct {
	Limits wireLimits `json:"limits"`
}

type setLimitsRequest struct {
	UserID   int64 `json:"user_id"`
	Food     int64 `json:"food"`
	Travel   int64 `json:"travel"`
	Shopping int64 `json:"shopping"`
	Bills    int64 `json:"bills"`
	Other    int64 `json:"other"`
}

type statsResponse struct {
	Stats struct {
		Count   int     `json:"count"`
		Total   float64 `json:"total"`
		Minimum float64 `json:"minimum"`
		Maximum float64 `json:"maximum"`
		Average float64 `json:"average"`
	} `json:"stats"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// creation timestamps arrive as ISO 8601, with or without an offset
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseCreatedAt(s string) time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (we wireExpense) toDomain() core.Expense {
	category, err := core.ParseCategory(we.Category)
	if err != nil {
		// Unknown categories stay visible in the table but never count
		// toward chart or limit totals.
		category = core.Category(we.Category)
	}
	notes := ""
	if we.Notes != nil {
		notes = *we.Notes
	}
	return core.Expense{
		ID:        we.ExpenseID,
		UserID:    we.UserID,
		Title:     we.Title,
		Amount:    core.FromUnits(we.Amount),
		Category:  category,
		Notes:     notes,
		CreatedAt: parseCreatedAt(we.DateCreated),
	}
}

func (wl wireLimits) toDomain() core.Limits {
	return core.Limits{
		Food:     wl.Food,
		Travel:   wl.Travel,
		Shopping: wl.Shopping,
		Bills:    wl.Bills,
		Other:    wl.Other,
	}
}
