package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrShiftInactive = errors.New("shift is inactive")
)
