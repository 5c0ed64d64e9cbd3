// Package judgment classifies campaigns from their recent daily records.
// Everything in this package is pure: identical inputs give identical output.
package judgment

import (
	"slices"

	"mesa-judge/internal/core/domain"
)

// WindowDays is the rolling window the rule engine aggregates over.
const WindowDays = 7

// Window holds a campaign's records ordered newest first.
type Window struct {
	records []domain.DailyRecord
}

// NewWindow copies records and sorts them by date, newest first.
func NewWindow(records []domain.DailyRecord) Window {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b domain.DailyRecord) int {
		return b.Date.Compare(a.Date)
	})
	return Window{records: sorted}
}

// Len returns the number of records in the window.
func (w Window) Len() int {
	return len(w.records)
}

// Latest returns the most recent record.
func (w Window) Latest() (domain.DailyRecord, bool) {
	if len(w.records) == 0 {
		return domain.DailyRecord{}, false
	}
	return w.records[0], true
}

// LastNDays sums the n most recent records. ROAS is derived from the sums
// rather than averaged over days, so high-spend days weigh accordingly.
func (w Window) LastNDays(n int) domain.Aggregate {
	n = min(max(n, 0), len(w.records))
	var agg domain.Aggregate
	for _, r := range w.records[:n] {
		agg.TotalSpend += r.Spend
		agg.TotalRevenue += r.Revenue
		agg.TotalProfit += r.Profit
	}
	agg.DaysCounted = n
	agg.ROAS = domain.ROAS(agg.TotalRevenue, agg.TotalSpend)
	return agg
}

// Series returns the metric values ordered oldest to newest.
func (w Window) Series(m domain.Metric) []float64 {
	out := make([]float64, len(w.records))
	for i, r := range w.records {
		out[len(w.records)-1-i] = r.Value(m)
	}
	return out
}
