package service

import "time"

// dateOnly truncates a timestamp to its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayRange returns the half-open [start, end) window of t's calendar day.
func dayRange(t time.Time) (time.Time, time.Time) {
	start := dateOnly(t)
	return start, start.AddDate(0, 0, 1)
}

// previousMonthRange returns the half-open window of the calendar month
// before now. January rolls over to December of the prior year.
func previousMonthRange(now time.Time) (time.Time, time.Time) {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.AddDate(0, -1, 0), firstOfMonth
}

// filterRange translates a named report filter into [start, end) bounds.
// A nil bound means unbounded on that side; ok is false for unknown names.
func filterRange(filter string, now time.Time) (start, end *time.Time, ok bool) {
	switch filter {
	case "last7days":
		s := dateOnly(now).AddDate(0, 0, -7)
		return &s, nil, true
	case "last15days":
		s := dateOnly(now).AddDate(0, 0, -15)
		return &s, nil, true
	case "last30days":
		s := dateOnly(now).AddDate(0, 0, -30)
		return &s, nil, true
	case "previousMonth":
		s, e := previousMonthRange(now)
		return &s, &e, true
	}
	return nil, nil, false
}
