package view

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"smartexpense/internal/core"
)

// ZeroAmount is what the summary cards show for an empty filtered set.
const ZeroAmount = "₹0"

var titleCaser = cases.Title(language.English)

// FormatMoney renders cents as an INR display string with two decimals.
func FormatMoney(m core.Money) string {
	return money.New(m.Cents, money.INR).Display()
}

// FormatDate renders a creation timestamp for the expense table.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// CategoryLabel renders a category for display, normalizing wire casing.
func CategoryLabel(c core.Category) string {
	return titleCaser.String(c.Key())
}

// Greeting builds the dashboard salutation from the wall clock and the
// user's display name.
func Greeting(now time.Time, u core.User) string {
	hour := now.Hour()
	greeting := "Good Night"
	switch {
	case hour < 12:
		greeting = "Good Morning"
	case hour < 17:
		greeting = "Good Afternoon"
	case hour < 21:
		greeting = "Good Evening"
	}
	return greeting + ", " + u.FirstName() + "!"
}

// Sanitize trims whitespace and strips control runes from user-entered text
// before it reaches the screen.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
