package view

import (
	"reflect"
	"testing"
	"time"

	"smartexpense/internal/core"
)

var (
	testNow  = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	testUser = core.User{ID: 7, Username: "jane@example.com", FullName: "Jane Doe"}
)

func testSnapshot() []core.Expense {
	return []core.Expense{
		{ID: 3, Title: "Dinner", Amount: core.Money{Cents: 45050}, Category: core.Food, CreatedAt: testNow.AddDate(0, 0, -1)},
		{ID: 2, Title: "Bus pass", Amount: core.Money{Cents: 3000}, Category: core.Travel, Notes: "monthly", CreatedAt: testNow.AddDate(0, 0, -3)},
		{ID: 1, Title: "Old rent", Amount: core.Money{Cents: 200000}, Category: core.Bills, CreatedAt: testNow.AddDate(0, -2, 0)},
	}
}

func TestBuildDashboardEmptySnapshot(t *testing.T) {
	d := BuildDashboard(nil, core.WindowAll, core.Limits{}, LimitsOK, testUser, testNow)
	want := SummaryCards{Total: ZeroAmount, Min: ZeroAmount, Max: ZeroAmount, Avg: ZeroAmount}
	if d.Summary != want {
		t.Fatalf("summary: got %+v", d.Summary)
	}
	if len(d.Rows) != 0 {
		t.Fatalf("rows: got %d", len(d.Rows))
	}
	if d.Limits != LimitsNone {
		t.Fatalf("no configured limits must render the placeholder, got %v", d.Limits)
	}
	// The chart still carries all five slices, all zero.
	if len(d.Chart) != 5 {
		t.Fatalf("chart: got %d slices", len(d.Chart))
	}
	for _, s := range d.Chart {
		if s.Cents != 0 || s.Percent != 0 {
			t.Fatalf("slice %s not zero: %+v", s.Category, s)
		}
	}
}

func TestBuildDashboardSummary(t *testing.T) {
	d := BuildDashboard(testSnapshot(), core.WindowAll, core.Limits{}, LimitsOK, testUser, testNow)
	if d.Count != 3 {
		t.Fatalf("count: got %d", d.Count)
	}
	if d.Summary.Total != "₹2,480.50" {
		t.Fatalf("total: got %q", d.Summary.Total)
	}
	if d.Summary.Min != "₹30.00" {
		t.Fatalf("min: got %q", d.Summary.Min)
	}
	if d.Summary.Max != "₹2,000.00" {
		t.Fatalf("max: got %q", d.Summary.Max)
	}
	if d.Greeting != "Good Morning, Jane!" {
		t.Fatalf("greeting: got %q", d.Greeting)
	}
}

func TestBuildDashboardWindowFiltersRows(t *testing.T) {
	d := BuildDashboard(testSnapshot(), core.WindowWeek, core.Limits{}, LimitsOK, testUser, testNow)
	if d.Count != 2 {
		t.Fatalf("count: got %d, want 2 within the last week", d.Count)
	}
	for _, row := range d.Rows {
		if row.ID == 1 {
			t.Fatal("expense outside the window leaked into the table")
		}
	}
}

func TestBuildDashboardRows(t *testing.T) {
	d := BuildDashboard(testSnapshot(), core.WindowAll, core.Limits{}, LimitsOK, testUser, testNow)
	row := d.Rows[1]
	if row.Title != "Bus pass" || row.Amount != "₹30.00" || row.Category != "Travel" || row.Notes != "monthly" {
		t.Fatalf("unexpected row %+v", row)
	}
	if d.Rows[0].Notes != "-" {
		t.Fatalf("empty notes must render as dash, got %q", d.Rows[0].Notes)
	}
}

func TestBuildDashboardChartPercents(t *testing.T) {
	snapshot := []core.Expense{
		{Amount: core.Money{Cents: 7500}, Category: core.Food, CreatedAt: testNow},
		{Amount: core.Money{Cents: 2500}, Category: core.Bills, CreatedAt: testNow},
	}
	d := BuildDashboard(snapshot, core.WindowAll, core.Limits{}, LimitsOK, testUser, testNow)
	byCat := make(map[core.Category]ChartSlice)
	for _, s := range d.Chart {
		byCat[s.Category] = s
	}
	if byCat[core.Food].Percent != 75 {
		t.Fatalf("food: got %v", byCat[core.Food].Percent)
	}
	if byCat[core.Bills].Percent != 25 {
		t.Fatalf("bills: got %v", byCat[core.Bills].Percent)
	}
	if byCat[core.Other].Percent != 0 {
		t.Fatalf("other: got %v", byCat[core.Other].Percent)
	}
}

func TestLimitBarTiers(t *testing.T) {
	spend := func(cents int64) []core.CategoryAmount {
		return core.CategoryTotals([]core.Expense{
			{Amount: core.Money{Cents: cents}, Category: core.Food},
		})
	}
	limits := core.Limits{Food: 1000} // 100000 cents

	cases := []struct {
		spentCents int64
		want       Tier
	}{
		{100000, TierDanger},  // ratio exactly 1.0
		{120000, TierDanger},  // over the limit
		{80000, TierWarning},  // ratio exactly 0.8
		{79999, TierNormal},   // ratio 0.79999
		{0, TierNormal},
	}
	for i, tc := range cases {
		bars := BuildLimitBars(spend(tc.spentCents), limits)
		if len(bars) != 1 {
			t.Fatalf("case %d: got %d bars", i, len(bars))
		}
		if bars[0].Tier != tc.want {
			t.Fatalf("case %d (spent %d): got tier %v, want %v", i, tc.spentCents, bars[0].Tier, tc.want)
		}
	}
}

func TestLimitBarClampsAtHundred(t *testing.T) {
	totals := core.CategoryTotals([]core.Expense{
		{Amount: core.Money{Cents: 150000}, Category: core.Food},
	})
	bars := BuildLimitBars(totals, core.Limits{Food: 1000})
	if bars[0].Percent != 150 {
		t.Fatalf("true percent: got %v", bars[0].Percent)
	}
	if bars[0].BarPercent != 100 {
		t.Fatalf("bar percent must clamp at 100, got %v", bars[0].BarPercent)
	}
	if bars[0].Caption != "₹1,500.00 / ₹1,000.00" {
		t.Fatalf("caption: got %q", bars[0].Caption)
	}
}

func TestLimitBarsOmitUnsetCategories(t *testing.T) {
	totals := core.CategoryTotals(testSnapshot())
	bars := BuildLimitBars(totals, core.Limits{Travel: 100})
	if len(bars) != 1 {
		t.Fatalf("got %d bars, want only the configured category", len(bars))
	}
	if bars[0].Category != core.Travel {
		t.Fatalf("got %s", bars[0].Category)
	}
}

func TestBuildDashboardLimitsUnavailable(t *testing.T) {
	d := BuildDashboard(testSnapshot(), core.WindowAll, core.Limits{}, LimitsUnavailable, testUser, testNow)
	if d.Limits != LimitsUnavailable {
		t.Fatalf("got %v", d.Limits)
	}
	if len(d.LimitBars) != 0 {
		t.Fatal("no bars when limits are unavailable")
	}
}

func TestBuildDashboardIdempotent(t *testing.T) {
	snapshot := testSnapshot()
	limits := core.Limits{Food: 1000, Travel: 50}
	a := BuildDashboard(snapshot, core.WindowMonth, limits, LimitsOK, testUser, testNow)
	b := BuildDashboard(snapshot, core.WindowMonth, limits, LimitsOK, testUser, testNow)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same inputs must produce an identical view model")
	}
}
