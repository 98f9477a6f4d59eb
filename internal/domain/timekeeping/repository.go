package timekeeping

import (
	"context"
	"time"
)

type Repository interface {
	// ListRange returns all entries whose date falls in [start, end] inclusive.
	ListRange(ctx context.Context, start, end time.Time) ([]Entry, error)
	ListStaffRange(ctx context.Context, staffID string, start, end time.Time) ([]Entry, error)
	GetByKey(ctx context.Context, staffID, shiftID string, date time.Time) (Entry, error)
	// Upsert inserts or replaces the entry for its (staff, shift, date) key.
	Upsert(ctx context.Context, entry Entry) (Entry, error)
	// BackfillNotChecked creates not-checked entries for every schedule
	// assignment dated before the cutoff that has no entry yet. Returns the
	// number of entries created.
	BackfillNotChecked(ctx context.Context, before time.Time) (int64, error)
}
