package core

import "testing"

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || s.Total.Cents != 0 || s.Min.Cents != 0 || s.Max.Cents != 0 || s.Avg.Cents != 0 {
		t.Fatalf("empty set must summarize to zero, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	expenses := []Expense{
		{Title: "a", Amount: Money{Cents: 1000}, Category: Food},
		{Title: "b", Amount: Money{Cents: 250}, Category: Travel},
		{Title: "c", Amount: Money{Cents: 4750}, Category: Food},
	}
	s := Summarize(expenses)
	if s.Count != 3 {
		t.Fatalf("count: got %d", s.Count)
	}
	if s.Total.Cents != 6000 {
		t.Fatalf("total: got %d", s.Total.Cents)
	}
	if s.Min.Cents != 250 {
		t.Fatalf("min: got %d", s.Min.Cents)
	}
	if s.Max.Cents != 4750 {
		t.Fatalf("max: got %d", s.Max.Cents)
	}
	if s.Avg.Cents != 2000 {
		t.Fatalf("avg: got %d", s.Avg.Cents)
	}
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]Expense{{Amount: Money{Cents: 999}}})
	if s.Min.Cents != 999 || s.Max.Cents != 999 || s.Avg.Cents != 999 {
		t.Fatalf("single element: %+v", s)
	}
}

func TestCategoryTotals(t *testing.T) {
	expenses := []Expense{
		{Amount: Money{Cents: 100}, Category: Food},
		{Amount: Money{Cents: 300}, Category: Food},
		{Amount: Money{Cents: 50}, Category: Bills},
	}
	totals := CategoryTotals(expenses)
	if len(totals) != 5 {
		t.Fatalf("want all five categories, got %d", len(totals))
	}
	want := map[Category]int64{Food: 400, Travel: 0, Shopping: 0, Bills: 50, Other: 0}
	for i, ca := range totals {
		if ca.Category != Categories()[i] {
			t.Fatalf("order broken at %d: %s", i, ca.Category)
		}
		if ca.Amount.Cents != want[ca.Category] {
			t.Fatalf("%s: got %d, want %d", ca.Category, ca.Amount.Cents, want[ca.Category])
		}
	}
}

func TestCategoryTotalsUnknownCategoryIgnored(t *testing.T) {
	totals := CategoryTotals([]Expense{{Amount: Money{Cents: 100}, Category: "Misc"}})
	for _, ca := range totals {
		if ca.Amount.Cents != 0 {
			t.Fatalf("unknown category leaked into %s", ca.Category)
		}
	}
}
