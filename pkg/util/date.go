package util

import "time"

// Day truncates t to midnight in its location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Window returns `days` contiguous calendar days ending at base, oldest
// first. Window(today, 100)[99] is today and [0] is 99 days ago.
func Window(base time.Time, days int) []time.Time {
	if days <= 0 {
		return nil
	}
	base = Day(base)
	out := make([]time.Time, days)
	for i := 0; i < days; i++ {
		out[i] = base.AddDate(0, 0, i-(days-1))
	}
	return out
}
