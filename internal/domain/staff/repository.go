package staff

import "context"

// StaffRepository reads the staff directory. Staff records and their salary
// settings are owned by an external directory; this core only reads them.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context, activeOnly bool) ([]Staff, error)
}
