package shift

import "context"

// ShiftRepository reads the shift directory. Shifts are owned by an external
// catalog; this core never mutates them.
type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, activeOnly bool) ([]Shift, error)
}
