package core

import (
	"errors"
	"strings"
	"time"
)

// The five spending categories are fixed across the whole application:
// the chart, the limits and the table all iterate the same enumeration.
const (
	Food     Category = "Food"
	Travel   Category = "Travel"
	Shopping Category = "Shopping"
	Bills    Category = "Bills"
	Other    Category = "Other"
)

type (
	Category string

	// User is the authenticated identity returned by login and held in the
	// session store until logout.
	User struct {
		ID       int64
		Username string
		FullName string
	}

	Expense struct {
		ID        int64
		UserID    int64
		Title     string
		Amount    Money
		Category  Category
		Notes     string
		CreatedAt time.Time
	}

	// Limits maps each category to a spending ceiling in whole currency
	// units. Zero means the limit is unset.
	Limits struct {
		Food     int64
		Travel   int64
		Shopping int64
		Bills    int64
		Other    int64
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyTitle      = errors.New("empty title")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNegativeLimit   = errors.New("negative limit")
)

// Categories returns the fixed enumeration in display order.
func Categories() []Category {
	return []Category{Food, Travel, Shopping, Bills, Other}
}

// ParseCategory accepts any casing used on the wire ("food", "Food").
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// Key is the lowercase form used in API request and response bodies.
func (c Category) Key() string {
	return strings.ToLower(string(c))
}

func (c Category) Validate() error {
	_, err := ParseCategory(string(c))
	return err
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return e.Category.Validate()
}

// ForCategory returns the configured ceiling for a category, 0 when unset.
func (l Limits) ForCategory(c Category) int64 {
	switch c {
	case Food:
		return l.Food
	case Travel:
		return l.Travel
	case Shopping:
		return l.Shopping
	case Bills:
		return l.Bills
	case Other:
		return l.Other
	}
	return 0
}

// Configured reports whether at least one category has a nonzero limit.
func (l Limits) Configured() bool {
	for _, c := range Categories() {
		if l.ForCategory(c) > 0 {
			return true
		}
	}
	return false
}

func (l Limits) Validate() error {
	for _, c := range Categories() {
		if l.ForCategory(c) < 0 {
			return ErrNegativeLimit
		}
	}
	return nil
}

// FirstName returns the first token of the display name, "User" when unset.
func (u User) FirstName() string {
	fields := strings.Fields(u.FullName)
	if len(fields) == 0 {
		return "User"
	}
	return fields[0]
}
