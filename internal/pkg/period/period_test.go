package period

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassify(t *testing.T) {
	cases := []struct {
		date string
		want DayType
	}{
		{"2025-03-10", DayTypeWeekday}, // Monday
		{"2025-03-14", DayTypeWeekday}, // Friday
		{"2025-03-15", DayTypeSaturday},
		{"2025-03-16", DayTypeSunday},
		{"2025-03-17", DayTypeWeekday},
	}
	for _, c := range cases {
		got := Classify(date(c.date))
		if got != c.want {
			t.Errorf("Classify(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}

func TestMonth(t *testing.T) {
	cases := []struct {
		month, year int
		start, end  string
	}{
		{3, 2025, "2025-03-01", "2025-03-31"},
		{2, 2025, "2025-02-01", "2025-02-28"},
		{2, 2024, "2024-02-01", "2024-02-29"},
		{12, 2025, "2025-12-01", "2025-12-31"},
	}
	for _, c := range cases {
		r := Month(c.month, c.year)
		if r.StartISO() != c.start || r.EndISO() != c.end {
			t.Errorf("Month(%d, %d) = [%s, %s], want [%s, %s]",
				c.month, c.year, r.StartISO(), r.EndISO(), c.start, c.end)
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := Month(3, 2025)

	if !r.Contains(date("2025-03-01")) {
		t.Error("range should include its start date")
	}
	if !r.Contains(date("2025-03-31")) {
		t.Error("range should include its end date")
	}
	if r.Contains(date("2025-02-28")) {
		t.Error("range should not include the day before its start")
	}
	if r.Contains(date("2025-04-01")) {
		t.Error("range should not include the day after its end")
	}

	// Time-of-day must not leak into the comparison.
	late := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	if !r.Contains(late) {
		t.Error("range should include the end date regardless of clock time")
	}
}

func TestNewRejectsInverted(t *testing.T) {
	if _, err := New(date("2025-03-10"), date("2025-03-05")); err == nil {
		t.Error("New should reject an inverted range")
	}
	if _, err := New(date("2025-03-10"), date("2025-03-10")); err != nil {
		t.Errorf("New should allow a single-day range, got %v", err)
	}
}
