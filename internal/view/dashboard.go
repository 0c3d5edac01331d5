// Package view derives display-ready view models from domain state. Every
// function here is pure: the same (snapshot, window, limits) triple always
// produces an identical view model, and nothing in this package touches the
// terminal or the network.
package view

import (
	"fmt"
	"time"

	"smartexpense/internal/core"
)

// Tier is the visual severity of a limit bar.
type Tier int

const (
	TierNormal Tier = iota
	TierWarning
	TierDanger
)

// LimitsState distinguishes "no limits configured" from "limits could not
// be loaded"; the dashboard renders a different placeholder for each.
type LimitsState int

const (
	LimitsOK LimitsState = iota
	LimitsNone
	LimitsUnavailable
)

type (
	// SummaryCards are the four aggregate figures, currency-formatted.
	SummaryCards struct {
		Total string
		Min   string
		Max   string
		Avg   string
	}

	TableRow struct {
		ID       int64
		Title    string
		Amount   string
		Category string
		Notes    string
		Date     string
	}

	// ChartSlice is one category's share of the filtered total.
	ChartSlice struct {
		Category core.Category
		Label    string
		Amount   string
		Cents    int64
		Percent  float64
	}

	// LimitBar is the progress line for one category with a configured
	// limit. Percent is the true ratio; BarPercent is clamped at 100 for
	// drawing.
	LimitBar struct {
		Category   core.Category
		Label      string
		Caption    string
		Percent    float64
		BarPercent float64
		Tier       Tier
	}

	Dashboard struct {
		Greeting  string
		Window    core.Window
		Count     int
		Summary   SummaryCards
		Rows      []TableRow
		Chart     []ChartSlice
		LimitBars []LimitBar
		Limits    LimitsState
	}
)

// BuildDashboard assembles the complete dashboard view model from the
// expense snapshot, the selected window, the limits snapshot and the clock.
func BuildDashboard(snapshot []core.Expense, w core.Window, limits core.Limits, limitsState LimitsState, user core.User, now time.Time) Dashboard {
	filtered := core.FilterExpenses(snapshot, w, now)
	totals := core.CategoryTotals(filtered)

	d := Dashboard{
		Greeting: Greeting(now, user),
		Window:   w,
		Count:    len(filtered),
		Summary:  buildSummary(filtered),
		Rows:     buildRows(filtered),
		Chart:    buildChart(totals),
		Limits:   limitsState,
	}
	if limitsState == LimitsOK {
		d.LimitBars = BuildLimitBars(totals, limits)
		if len(d.LimitBars) == 0 {
			d.Limits = LimitsNone
		}
	}
	return d
}

func buildSummary(filtered []core.Expense) SummaryCards {
	if len(filtered) == 0 {
		return SummaryCards{Total: ZeroAmount, Min: ZeroAmount, Max: ZeroAmount, Avg: ZeroAmount}
	}
	s := core.Summarize(filtered)
	return SummaryCards{
		Total: FormatMoney(s.Total),
		Min:   FormatMoney(s.Min),
		Max:   FormatMoney(s.Max),
		Avg:   FormatMoney(s.Avg),
	}
}

func buildRows(filtered []core.Expense) []TableRow {
	rows := make([]TableRow, 0, len(filtered))
	for _, e := range filtered {
		notes := Sanitize(e.Notes)
		if notes == "" {
			notes = "-"
		}
		rows = append(rows, TableRow{
			ID:       e.ID,
			Title:    Sanitize(e.Title),
			Amount:   FormatMoney(e.Amount),
			Category: CategoryLabel(e.Category),
			Notes:    notes,
			Date:     FormatDate(e.CreatedAt),
		})
	}
	return rows
}

func buildChart(totals []core.CategoryAmount) []ChartSlice {
	var totalCents int64
	for _, ca := range totals {
		totalCents += ca.Amount.Cents
	}
	slices := make([]ChartSlice, 0, len(totals))
	for _, ca := range totals {
		percent := 0.0
		if totalCents > 0 {
			percent = float64(ca.Amount.Cents) / float64(totalCents) * 100
		}
		slices = append(slices, ChartSlice{
			Category: ca.Category,
			Label:    CategoryLabel(ca.Category),
			Amount:   FormatMoney(ca.Amount),
			Cents:    ca.Amount.Cents,
			Percent:  percent,
		})
	}
	return slices
}

// BuildLimitBars computes spent-versus-limit for every category with a
// nonzero limit. Categories without a configured limit are omitted.
func BuildLimitBars(totals []core.CategoryAmount, limits core.Limits) []LimitBar {
	spentByCat := make(map[core.Category]int64, len(totals))
	for _, ca := range totals {
		spentByCat[ca.Category] = ca.Amount.Cents
	}

	bars := make([]LimitBar, 0, 5)
	for _, c := range core.Categories() {
		limit := limits.ForCategory(c)
		if limit <= 0 {
			continue
		}
		limitCents := limit * 100
		spentCents := spentByCat[c]
		percent := float64(spentCents) / float64(limitCents) * 100

		tier := TierNormal
		switch {
		case percent >= 100:
			tier = TierDanger
		case percent >= 80:
			tier = TierWarning
		}

		barPercent := percent
		if barPercent > 100 {
			barPercent = 100
		}

		bars = append(bars, LimitBar{
			Category: c,
			Label:    CategoryLabel(c),
			Caption: fmt.Sprintf("%s / %s",
				FormatMoney(core.Money{Cents: spentCents}),
				FormatMoney(core.Money{Cents: limitCents})),
			Percent:    percent,
			BarPercent: barPercent,
			Tier:       tier,
		})
	}
	return bars
}
