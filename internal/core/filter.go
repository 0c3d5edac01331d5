package core

import "time"

// Window is the dashboard's time filter. It is process state, defaults to
// WindowAll and is never persisted across restarts.
type Window string

const (
	WindowAll   Window = "all"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// Windows returns the selectable filters in display order.
func Windows() []Window {
	return []Window{WindowAll, WindowWeek, WindowMonth}
}

func (w Window) Label() string {
	switch w {
	case WindowWeek:
		return "Last 7 Days"
	case WindowMonth:
		return "Last Month"
	}
	return "All Time"
}

// Cutoff returns the inclusive lower bound for CreatedAt under this window.
// Week is a fixed 7 days; Month subtracts one calendar month, so the cutoff
// tracks month lengths rather than a fixed 30 days. The zero time means no
// lower bound.
func (w Window) Cutoff(now time.Time) time.Time {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	}
	return time.Time{}
}

// FilterExpenses derives the filtered view of the snapshot. The snapshot
// itself is never mutated; callers re-derive on every filter change.
func FilterExpenses(snapshot []Expense, w Window, now time.Time) []Expense {
	cutoff := w.Cutoff(now)
	if cutoff.IsZero() {
		out := make([]Expense, len(snapshot))
		copy(out, snapshot)
		return out
	}
	out := make([]Expense, 0, len(snapshot))
	for _, e := range snapshot {
		if !e.CreatedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
