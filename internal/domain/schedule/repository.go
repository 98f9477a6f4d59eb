package schedule

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, staffID *string, start, end time.Time) ([]Entry, error)
	GetByKey(ctx context.Context, staffID, shiftID string, date time.Time) (Entry, error)
	// Upsert is idempotent: re-submitting an existing (staff, shift, date)
	// returns the existing entry unchanged.
	Upsert(ctx context.Context, entry Entry) (Entry, error)
	Delete(ctx context.Context, id string) error
	// Swap exchanges the shift assignments of the two referenced rows as a
	// single transaction. Both rows are locked and the guard conditions
	// (existence, no recorded attendance, no duplicate) are re-checked under
	// the lock; on any violation nothing is changed. Timekeeping rows still in
	// a swappable state follow their assignment to the new shift.
	Swap(ctx context.Context, from, to AssignmentRef) error
}
