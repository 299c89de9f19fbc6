package shoppinglist

import "time"

// ExpandDateRange returns every calendar day from start through end
// inclusive, in chronological order. A single-day range yields one
// element; if start is after end the result is empty.
func ExpandDateRange(start, end time.Time) []time.Time {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if start.After(end) {
		return nil
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
