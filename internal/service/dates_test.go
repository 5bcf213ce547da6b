package service

import (
	"testing"
	"time"
)

func TestPreviousMonthRange(t *testing.T) {
	cases := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid year",
			now:       time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "january rolls to december of prior year",
			now:       time.Date(2026, time.January, 3, 8, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "march after a leap february",
			now:       time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := previousMonthRange(tc.now)
			if !start.Equal(tc.wantStart) || !end.Equal(tc.wantEnd) {
				t.Errorf("previousMonthRange(%v) = [%v, %v), want [%v, %v)",
					tc.now, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestFilterRange(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 30, 0, 0, time.UTC)

	start, end, ok := filterRange("last7days", now)
	if !ok || start == nil || end != nil {
		t.Fatalf("last7days = (%v, %v, %v), want open-ended start", start, end, ok)
	}
	if want := time.Date(2026, time.June, 8, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("last7days start = %v, want %v", start, want)
	}

	start, end, ok = filterRange("previousMonth", now)
	if !ok || start == nil || end == nil {
		t.Fatalf("previousMonth = (%v, %v, %v), want bounded window", start, end, ok)
	}

	if _, _, ok := filterRange("lastCentury", now); ok {
		t.Error("unknown filter reported ok")
	}
	if _, _, ok := filterRange("", now); ok {
		t.Error("empty filter reported ok")
	}
}

func TestDayRange(t *testing.T) {
	now := time.Date(2026, time.June, 15, 23, 45, 0, 0, time.UTC)
	start, end := dayRange(now)
	if !start.Equal(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want midnight", start)
	}
	if !end.Equal(time.Date(2026, time.June, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want next midnight", end)
	}
}
