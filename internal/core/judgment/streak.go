package judgment

// ConsecutiveLossDays counts the most recent records with negative profit.
// Dates missing from the source are not filled in, the count runs over the
// records that exist.
func ConsecutiveLossDays(w Window) int {
	n := 0
	for _, r := range w.records {
		if r.Profit >= 0 {
			break
		}
		n++
	}
	return n
}

// ConsecutiveProfitDays counts the most recent records with positive profit.
func ConsecutiveProfitDays(w Window) int {
	n := 0
	for _, r := range w.records {
		if r.Profit <= 0 {
			break
		}
		n++
	}
	return n
}
