package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
)

type TimekeepingJobs struct {
	timekeepingRepo timekeeping.Repository
}

func NewTimekeepingJobs(timekeepingRepo timekeeping.Repository) *TimekeepingJobs {
	return &TimekeepingJobs{timekeepingRepo: timekeepingRepo}
}

func (j *TimekeepingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("backfill_not_checked", 1*time.Hour, j.BackfillNotChecked)
}

// BackfillNotChecked fills in explicit not-checked entries for every past
// schedule assignment that never got an attendance record, so payroll and the
// time sheet agree on what was left unrecorded.
func (j *TimekeepingJobs) BackfillNotChecked(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 local time)
	if time.Now().Hour() != 0 {
		return nil
	}

	today := time.Now().Truncate(24 * time.Hour)

	count, err := j.timekeepingRepo.BackfillNotChecked(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to backfill unrecorded shifts: %w", err)
	}

	if count > 0 {
		slog.Info("Cron: Backfilled unrecorded shifts", "count", count)
	}
	return nil
}
