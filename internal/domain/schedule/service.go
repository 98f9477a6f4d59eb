package schedule

import "context"

type Service interface {
	List(ctx context.Context, staffID *string, startDate, endDate string) ([]EntryResponse, error)
	// CreateAssignments assigns the staff member to each shift on the date.
	// Upsert semantics: already-assigned shifts are returned unchanged.
	CreateAssignments(ctx context.Context, req CreateAssignmentsRequest) ([]EntryResponse, error)
	DeleteAssignment(ctx context.Context, id string) error
	// Swap validates both sides against the current schedule and attendance
	// records and, when valid, exchanges the two shift assignments atomically.
	Swap(ctx context.Context, req SwapRequest) error
	// BulkRegister records attendance for every staff id that holds the shift
	// on the date; ids without a matching assignment are reported, not fatal.
	BulkRegister(ctx context.Context, req BulkRegisterRequest) (BulkRegisterResult, error)
}
