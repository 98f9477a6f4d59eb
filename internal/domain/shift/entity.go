package shift

import "time"

// Shift is reference data: a named recurring work period. Inactive shifts are
// excluded from new scheduling but stay resolvable for historical payroll.
type Shift struct {
	ID        string
	Name      string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
