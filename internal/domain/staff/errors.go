package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("staff not found")
)
