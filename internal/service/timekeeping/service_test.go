package timekeeping

import (
	"context"
	"testing"
	"time"

	"github.com/shopvui/backoffice-go/internal/domain/schedule"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	entries []schedule.Entry
}

func (f *fakeScheduleRepo) List(_ context.Context, _ *string, _, _ time.Time) ([]schedule.Entry, error) {
	return f.entries, nil
}

func (f *fakeScheduleRepo) GetByKey(_ context.Context, staffID, shiftID string, date time.Time) (schedule.Entry, error) {
	for _, e := range f.entries {
		if e.StaffID == staffID && e.ShiftID == shiftID && period.SameDate(e.WorkDate, date) {
			return e, nil
		}
	}
	return schedule.Entry{}, schedule.ErrAssignmentNotFound
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, entry schedule.Entry) (schedule.Entry, error) {
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeScheduleRepo) Delete(context.Context, string) error { return nil }

func (f *fakeScheduleRepo) Swap(context.Context, schedule.AssignmentRef, schedule.AssignmentRef) error {
	return nil
}

type fakeTimekeepingRepo struct {
	entries []timekeeping.Entry
}

func (f *fakeTimekeepingRepo) ListRange(_ context.Context, start, end time.Time) ([]timekeeping.Entry, error) {
	r, err := period.New(start, end)
	if err != nil {
		return nil, err
	}
	var out []timekeeping.Entry
	for _, e := range f.entries {
		if r.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTimekeepingRepo) ListStaffRange(_ context.Context, staffID string, start, end time.Time) ([]timekeeping.Entry, error) {
	all, _ := f.ListRange(context.Background(), start, end)
	var out []timekeeping.Entry
	for _, e := range all {
		if e.StaffID == staffID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTimekeepingRepo) GetByKey(_ context.Context, staffID, shiftID string, date time.Time) (timekeeping.Entry, error) {
	for _, e := range f.entries {
		if e.StaffID == staffID && e.ShiftID == shiftID && period.SameDate(e.Date, date) {
			return e, nil
		}
	}
	return timekeeping.Entry{}, timekeeping.ErrEntryNotFound
}

func (f *fakeTimekeepingRepo) Upsert(_ context.Context, entry timekeeping.Entry) (timekeeping.Entry, error) {
	for i, e := range f.entries {
		if e.StaffID == entry.StaffID && e.ShiftID == entry.ShiftID && period.SameDate(e.Date, entry.Date) {
			entry.ID = e.ID
			f.entries[i] = entry
			return entry, nil
		}
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeTimekeepingRepo) BackfillNotChecked(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := period.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRecordRejectsUnscheduled(t *testing.T) {
	svc := NewTimekeepingService(&fakeTimekeepingRepo{}, &fakeScheduleRepo{})

	_, err := svc.Record(context.Background(), timekeeping.RecordEntryRequest{
		StaffID: "st-1",
		ShiftID: "morning",
		Date:    "2025-03-10",
		Status:  "on-time",
	})
	assert.ErrorIs(t, err, schedule.ErrNotScheduled)
}

func TestRecordUpsertsScheduledEntry(t *testing.T) {
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
	}}
	tkRepo := &fakeTimekeepingRepo{}
	svc := NewTimekeepingService(tkRepo, schedRepo)

	checkIn := "08:05"
	resp, err := svc.Record(context.Background(), timekeeping.RecordEntryRequest{
		StaffID: "st-1",
		ShiftID: "morning",
		Date:    "2025-03-10",
		Status:  "late-early",
		CheckIn: &checkIn,
	})
	require.NoError(t, err)
	assert.Equal(t, "late-early", resp.Status)
	assert.Equal(t, "2025-03-10", resp.Date)
	require.Len(t, tkRepo.entries, 1)

	// Re-recording the same key replaces the entry instead of duplicating it.
	resp, err = svc.Record(context.Background(), timekeeping.RecordEntryRequest{
		StaffID: "st-1",
		ShiftID: "morning",
		Date:    "2025-03-10",
		Status:  "on-time",
	})
	require.NoError(t, err)
	assert.Equal(t, "on-time", resp.Status)
	assert.Len(t, tkRepo.entries, 1)
}

func TestRecordValidation(t *testing.T) {
	svc := NewTimekeepingService(&fakeTimekeepingRepo{}, &fakeScheduleRepo{})

	leave := "approved-leave"
	badTime := "25:99"

	cases := []struct {
		name string
		req  timekeeping.RecordEntryRequest
	}{
		{"bad status", timekeeping.RecordEntryRequest{StaffID: "st-1", ShiftID: "morning", Date: "2025-03-10", Status: "asleep"}},
		{"bad date", timekeeping.RecordEntryRequest{StaffID: "st-1", ShiftID: "morning", Date: "10/03/2025", Status: "on-time"}},
		{"leave on worked entry", timekeeping.RecordEntryRequest{StaffID: "st-1", ShiftID: "morning", Date: "2025-03-10", Status: "on-time", LeaveType: &leave}},
		{"bad check-in", timekeeping.RecordEntryRequest{StaffID: "st-1", ShiftID: "morning", Date: "2025-03-10", Status: "on-time", CheckIn: &badTime}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), c.req)
			assert.Error(t, err)
		})
	}
}

func TestListFiltersRange(t *testing.T) {
	tkRepo := &fakeTimekeepingRepo{entries: []timekeeping.Entry{
		{ID: "e1", StaffID: "st-1", ShiftID: "morning", Date: mustDate(t, "2025-03-10"), Status: timekeeping.StatusOnTime},
		{ID: "e2", StaffID: "st-1", ShiftID: "morning", Date: mustDate(t, "2025-04-01"), Status: timekeeping.StatusOnTime},
	}}
	svc := NewTimekeepingService(tkRepo, &fakeScheduleRepo{})

	entries, err := svc.List(context.Background(), "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)

	_, err = svc.List(context.Background(), "not-a-date", "2025-03-31")
	assert.Error(t, err)
}
