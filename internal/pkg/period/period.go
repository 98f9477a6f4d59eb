package period

import (
	"fmt"
	"time"
)

// ISODate is the wire format for all calendar dates.
const ISODate = "2006-01-02"

// DayType classifies a calendar date for salary coefficient lookup.
type DayType string

const (
	DayTypeWeekday  DayType = "weekday"
	DayTypeSaturday DayType = "saturday"
	DayTypeSunday   DayType = "sunday"
)

// Classify returns the day type of a civil date.
func Classify(date time.Time) DayType {
	switch date.Weekday() {
	case time.Saturday:
		return DayTypeSaturday
	case time.Sunday:
		return DayTypeSunday
	default:
		return DayTypeWeekday
	}
}

// Range is an inclusive date range. Time-of-day components are ignored;
// comparisons are done on the ISO date string.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a range and rejects an inverted one.
func New(start, end time.Time) (Range, error) {
	if FormatDate(end) < FormatDate(start) {
		return Range{}, fmt.Errorf("period end %s is before start %s", FormatDate(end), FormatDate(start))
	}
	return Range{Start: start, End: end}, nil
}

// Month returns the full calendar month as an inclusive range.
func Month(month, year int) Range {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Range{Start: start, End: end}
}

// Contains reports whether date falls within the range, inclusive on both ends.
func (r Range) Contains(date time.Time) bool {
	d := FormatDate(date)
	return d >= FormatDate(r.Start) && d <= FormatDate(r.End)
}

// StartISO returns the range start formatted as yyyy-mm-dd.
func (r Range) StartISO() string { return FormatDate(r.Start) }

// EndISO returns the range end formatted as yyyy-mm-dd.
func (r Range) EndISO() string { return FormatDate(r.End) }

// FormatDate formats a date as yyyy-mm-dd, dropping any time-of-day component.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}

// ParseDate parses a yyyy-mm-dd date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

// SameDate reports whether two timestamps fall on the same civil date.
func SameDate(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}
