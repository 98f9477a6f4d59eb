package timekeeping

import "errors"

var (
	ErrEntryNotFound = errors.New("timekeeping entry not found")
)
