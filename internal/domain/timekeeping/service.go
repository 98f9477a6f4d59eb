package timekeeping

import "context"

type Service interface {
	List(ctx context.Context, startDate, endDate string) ([]EntryResponse, error)
	// Record upserts the attendance outcome for a scheduled assignment.
	// Recording against an unscheduled (staff, shift, date) is rejected.
	Record(ctx context.Context, req RecordEntryRequest) (EntryResponse, error)
}
