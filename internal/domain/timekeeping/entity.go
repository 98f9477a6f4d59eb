package timekeeping

import "time"

// Status enum for a recorded attendance outcome.
type Status string

const (
	StatusOnTime     Status = "on-time"
	StatusLateEarly  Status = "late-early"
	StatusMissing    Status = "missing"
	StatusNotChecked Status = "not-checked"
	StatusDayOff     Status = "day-off"
	StatusAbsent     Status = "absent"
)

var StatusValues = []string{
	string(StatusOnTime),
	string(StatusLateEarly),
	string(StatusMissing),
	string(StatusNotChecked),
	string(StatusDayOff),
	string(StatusAbsent),
}

// CountsForPay reports whether an entry with this status can contribute pay.
// Missing and not-checked shifts never pay, regardless of rule configuration.
func (s Status) CountsForPay() bool {
	return s != StatusMissing && s != StatusNotChecked
}

// Recorded reports whether the shift has actually been clocked. Only
// not-checked and missing entries are still swappable.
func (s Status) Recorded() bool {
	return s != StatusNotChecked && s != StatusMissing
}

// LeaveType enum, only meaningful when Status is day-off.
type LeaveType string

const (
	LeaveTypeApproved   LeaveType = "approved-leave"
	LeaveTypeUnapproved LeaveType = "unapproved-leave"
)

var LeaveTypeValues = []string{
	string(LeaveTypeApproved),
	string(LeaveTypeUnapproved),
}

// Entry is the recorded (or defaulted) attendance outcome for a scheduled
// assignment, keyed by (staff, shift, date).
type Entry struct {
	ID        string
	StaffID   string
	ShiftID   string
	Date      time.Time
	Status    Status
	LeaveType *LeaveType
	CheckIn   *string // "HH:MM"
	CheckOut  *string
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
