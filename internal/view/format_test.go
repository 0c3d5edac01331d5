package view

import (
	"testing"
	"time"

	"smartexpense/internal/core"
)

func TestGreeting(t *testing.T) {
	jane := core.User{FullName: "Jane Doe"}
	day := func(hour int) time.Time {
		return time.Date(2025, 6, 15, hour, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		hour int
		user core.User
		want string
	}{
		{10, jane, "Good Morning, Jane!"},
		{0, jane, "Good Morning, Jane!"},
		{11, jane, "Good Morning, Jane!"},
		{12, jane, "Good Afternoon, Jane!"},
		{16, jane, "Good Afternoon, Jane!"},
		{17, jane, "Good Evening, Jane!"},
		{18, jane, "Good Evening, Jane!"},
		{20, jane, "Good Evening, Jane!"},
		{21, jane, "Good Night, Jane!"},
		{23, jane, "Good Night, Jane!"},
		{10, core.User{}, "Good Morning, User!"},
	}
	for i, tc := range cases {
		if got := Greeting(day(tc.hour), tc.user); got != tc.want {
			t.Fatalf("case %d (hour %d): got %q, want %q", i, tc.hour, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1234, "₹12.34"},
		{45050, "₹450.50"},
		{100, "₹1.00"},
		{0, "₹0.00"},
	}
	for i, tc := range cases {
		if got := FormatMoney(core.Money{Cents: tc.cents}); got != tc.want {
			t.Fatalf("case %d: got %q, want %q", i, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 6, 8, 19, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "Jun 8, 2025" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDate(time.Time{}); got != "-" {
		t.Fatalf("zero time: got %q", got)
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel(core.Food); got != "Food" {
		t.Fatalf("got %q", got)
	}
	if got := CategoryLabel(core.Category("SHOPPING")); got != "Shopping" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"a\x00b\x07c", "abc"},
		{"tabs\tstay", "tabs\tstay"},
		{"", ""},
	}
	for i, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Fatalf("case %d: got %q, want %q", i, got, tc.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@example.com", "a@b.co", "x.y+z@sub.domain.org"}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Fatalf("%q should be valid", s)
		}
	}
	invalid := []string{"", "plain", "no@tld", "two@@at.com", "spaces in@mail.com"}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Fatalf("%q should be invalid", s)
		}
	}
}
