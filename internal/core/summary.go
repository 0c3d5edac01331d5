package core

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// Summary are the four aggregate figures shown on the dashboard cards.
// All fields are zero for an empty set.
type Summary struct {
	Count int
	Total Money
	Min   Money
	Max   Money
	Avg   Money
}

// Summarize computes total, extrema and average over a filtered set.
// The average is integer division in cents; display rounding happens in the
// view layer.
func Summarize(expenses []Expense) Summary {
	if len(expenses) == 0 {
		return Summary{}
	}
	s := Summary{
		Count: len(expenses),
		Min:   expenses[0].Amount,
		Max:   expenses[0].Amount,
	}
	for _, e := range expenses {
		s.Total.Cents += e.Amount.Cents
		if e.Amount.Cents < s.Min.Cents {
			s.Min = e.Amount
		}
		if e.Amount.Cents > s.Max.Cents {
			s.Max = e.Amount
		}
	}
	s.Avg = Money{Cents: s.Total.Cents / int64(s.Count)}
	return s
}

// CategoryTotals sums amounts per category over the fixed enumeration.
// Categories without expenses are present with a zero amount, so the chart
// always renders all five slices.
func CategoryTotals(expenses []Expense) []CategoryAmount {
	byCat := make(map[Category]int64, 5)
	for _, e := range expenses {
		if e.Category.Validate() == nil {
			byCat[e.Category] += e.Amount.Cents
		}
	}
	out := make([]CategoryAmount, 0, 5)
	for _, c := range Categories() {
		out = append(out, CategoryAmount{Category: c, Amount: Money{Cents: byCat[c]}})
	}
	return out
}
