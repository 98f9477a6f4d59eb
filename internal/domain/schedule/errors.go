package schedule

import "errors"

// Conflict reasons are distinct sentinels so callers can render the specific
// constraint that was violated instead of a generic failure.
var (
	ErrAssignmentNotFound  = errors.New("schedule assignment not found")
	ErrNotScheduled        = errors.New("staff is not scheduled for this shift on this date")
	ErrDuplicateAssignment = errors.New("staff already holds this shift on this date")
	ErrAlreadyCheckedIn    = errors.New("shift already has a recorded attendance and cannot be swapped")
	ErrSwapSameAssignment  = errors.New("cannot swap an assignment with itself")
)
