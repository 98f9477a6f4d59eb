package schedule

import "time"

// Entry is a planned assignment of a staff member to a shift on a date.
// The (staff, shift, date) triple is unique.
type Entry struct {
	ID        string
	StaffID   string
	ShiftID   string
	WorkDate  time.Time
	CreatedAt time.Time
}

// AssignmentRef identifies one side of a swap by its business key.
type AssignmentRef struct {
	StaffID  string
	ShiftID  string
	WorkDate time.Time
}

// Equal reports whether two refs name the same assignment.
func (r AssignmentRef) Equal(o AssignmentRef) bool {
	return r.StaffID == o.StaffID &&
		r.ShiftID == o.ShiftID &&
		r.WorkDate.Format("2006-01-02") == o.WorkDate.Format("2006-01-02")
}
