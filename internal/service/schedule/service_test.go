package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/shopvui/backoffice-go/internal/domain/schedule"
	"github.com/shopvui/backoffice-go/internal/domain/shift"
	"github.com/shopvui/backoffice-go/internal/domain/staff"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	entries   []schedule.Entry
	swapCalls int
}

func (f *fakeScheduleRepo) List(_ context.Context, staffID *string, start, end time.Time) ([]schedule.Entry, error) {
	r, err := period.New(start, end)
	if err != nil {
		return nil, err
	}
	var out []schedule.Entry
	for _, e := range f.entries {
		if staffID != nil && e.StaffID != *staffID {
			continue
		}
		if r.Contains(e.WorkDate) {
			out = append(out, e)
		}
	}
	return out, nil
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
	for _, e := range f.entries {
		if e.StaffID == entry.StaffID && e.ShiftID == entry.ShiftID && period.SameDate(e.WorkDate, entry.WorkDate) {
			return e, nil
		}
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id string) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return schedule.ErrAssignmentNotFound
}

func (f *fakeScheduleRepo) Swap(_ context.Context, from, to schedule.AssignmentRef) error {
	f.swapCalls++
	for i, e := range f.entries {
		switch {
		case e.StaffID == from.StaffID && e.ShiftID == from.ShiftID && period.SameDate(e.WorkDate, from.WorkDate):
			f.entries[i].ShiftID = to.ShiftID
		case e.StaffID == to.StaffID && e.ShiftID == to.ShiftID && period.SameDate(e.WorkDate, to.WorkDate):
			f.entries[i].ShiftID = from.ShiftID
		}
	}
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
	all, err := f.ListRange(context.Background(), start, end)
	if err != nil {
		return nil, err
	}
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

func (f *fakeTimekeepingRepo) BackfillNotChecked(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeStaffRepo struct {
	members map[string]staff.Staff
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	m, ok := f.members[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (f *fakeStaffRepo) List(_ context.Context, activeOnly bool) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, m := range f.members {
		if activeOnly && !m.IsActive {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) List(_ context.Context, activeOnly bool) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := period.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestService(schedRepo *fakeScheduleRepo, tkRepo *fakeTimekeepingRepo) schedule.Service {
	staffRepo := &fakeStaffRepo{members: map[string]staff.Staff{
		"st-1": {ID: "st-1", FullName: "An", IsActive: true},
		"st-2": {ID: "st-2", FullName: "Binh", IsActive: true},
		"st-3": {ID: "st-3", FullName: "Chi", IsActive: true},
	}}
	shiftRepo := &fakeShiftRepo{shifts: map[string]shift.Shift{
		"morning": {ID: "morning", Name: "Morning", IsActive: true},
		"evening": {ID: "evening", Name: "Evening", IsActive: true},
		"retired": {ID: "retired", Name: "Retired", IsActive: false},
	}}
	return NewScheduleService(schedRepo, tkRepo, staffRepo, shiftRepo)
}

func swapReq(fromStaff, fromShift, fromDate, toStaff, toShift, toDate string) schedule.SwapRequest {
	return schedule.SwapRequest{
		From: schedule.SwapSide{StaffID: fromStaff, ShiftID: fromShift, Date: fromDate},
		To:   schedule.SwapSide{StaffID: toStaff, ShiftID: toShift, Date: toDate},
	}
}

func TestSwapExchangesShifts(t *testing.T) {
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
		{ID: "a2", StaffID: "st-2", ShiftID: "evening", WorkDate: mustDate(t, "2025-03-10")},
	}}
	tkRepo := &fakeTimekeepingRepo{entries: []timekeeping.Entry{
		{StaffID: "st-1", ShiftID: "morning", Date: mustDate(t, "2025-03-10"), Status: timekeeping.StatusNotChecked},
	}}
	svc := newTestService(schedRepo, tkRepo)

	err := svc.Swap(context.Background(), swapReq("st-1", "morning", "2025-03-10", "st-2", "evening", "2025-03-10"))
	require.NoError(t, err)

	assert.Equal(t, 1, schedRepo.swapCalls)
	assert.Equal(t, "evening", schedRepo.entries[0].ShiftID)
	assert.Equal(t, "morning", schedRepo.entries[1].ShiftID)
}

func TestSwapRejectedWhenAttendanceRecorded(t *testing.T) {
	// One side already clocked on-time: the swap must fail and leave the
	// schedule untouched.
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
		{ID: "a2", StaffID: "st-2", ShiftID: "evening", WorkDate: mustDate(t, "2025-03-10")},
	}}
	tkRepo := &fakeTimekeepingRepo{entries: []timekeeping.Entry{
		{StaffID: "st-1", ShiftID: "morning", Date: mustDate(t, "2025-03-10"), Status: timekeeping.StatusOnTime},
	}}
	svc := newTestService(schedRepo, tkRepo)

	err := svc.Swap(context.Background(), swapReq("st-1", "morning", "2025-03-10", "st-2", "evening", "2025-03-10"))
	assert.ErrorIs(t, err, schedule.ErrAlreadyCheckedIn)

	assert.Equal(t, 0, schedRepo.swapCalls)
	assert.Equal(t, "morning", schedRepo.entries[0].ShiftID)
	assert.Equal(t, "evening", schedRepo.entries[1].ShiftID)
}

func TestSwapMissingAndNotCheckedAreStillSwappable(t *testing.T) {
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
		{ID: "a2", StaffID: "st-2", ShiftID: "evening", WorkDate: mustDate(t, "2025-03-10")},
	}}
	tkRepo := &fakeTimekeepingRepo{entries: []timekeeping.Entry{
		{StaffID: "st-1", ShiftID: "morning", Date: mustDate(t, "2025-03-10"), Status: timekeeping.StatusMissing},
		{StaffID: "st-2", ShiftID: "evening", Date: mustDate(t, "2025-03-10"), Status: timekeeping.StatusNotChecked},
	}}
	svc := newTestService(schedRepo, tkRepo)

	err := svc.Swap(context.Background(), swapReq("st-1", "morning", "2025-03-10", "st-2", "evening", "2025-03-10"))
	assert.NoError(t, err)
	assert.Equal(t, 1, schedRepo.swapCalls)
}

func TestSwapRejectedWhenNotScheduled(t *testing.T) {
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
	}}
	svc := newTestService(schedRepo, &fakeTimekeepingRepo{})

	err := svc.Swap(context.Background(), swapReq("st-1", "morning", "2025-03-10", "st-2", "evening", "2025-03-10"))
	assert.ErrorIs(t, err, schedule.ErrNotScheduled)
	assert.Equal(t, 0, schedRepo.swapCalls)
}

func TestSwapRejectedWhenResultDuplicates(t *testing.T) {
	// st-1 already holds the evening shift on the 10th, so receiving it from
	// st-2 would duplicate an existing assignment.
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
		{ID: "a2", StaffID: "st-1", ShiftID: "evening", WorkDate: mustDate(t, "2025-03-10")},
		{ID: "a3", StaffID: "st-2", ShiftID: "evening", WorkDate: mustDate(t, "2025-03-10")},
	}}
	svc := newTestService(schedRepo, &fakeTimekeepingRepo{})

	err := svc.Swap(context.Background(), swapReq("st-1", "morning", "2025-03-10", "st-2", "evening", "2025-03-10"))
	assert.ErrorIs(t, err, schedule.ErrDuplicateAssignment)
	assert.Equal(t, 0, schedRepo.swapCalls)
}

func TestSwapRejectedForSameAssignment(t *testing.T) {
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
	}}
	svc := newTestService(schedRepo, &fakeTimekeepingRepo{})

	err := svc.Swap(context.Background(), swapReq("st-1", "morning", "2025-03-10", "st-1", "morning", "2025-03-10"))
	assert.ErrorIs(t, err, schedule.ErrSwapSameAssignment)
	assert.Equal(t, 0, schedRepo.swapCalls)
}

func TestSwapSameStaffDifferentDays(t *testing.T) {
	// One person trading their own shifts across two days is a valid swap.
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
		{ID: "a2", StaffID: "st-1", ShiftID: "evening", WorkDate: mustDate(t, "2025-03-11")},
	}}
	svc := newTestService(schedRepo, &fakeTimekeepingRepo{})

	err := svc.Swap(context.Background(), swapReq("st-1", "morning", "2025-03-10", "st-1", "evening", "2025-03-11"))
	require.NoError(t, err)
	assert.Equal(t, "evening", schedRepo.entries[0].ShiftID)
	assert.Equal(t, "morning", schedRepo.entries[1].ShiftID)
}

func TestBulkRegisterPartialSuccess(t *testing.T) {
	// st-1 and st-2 hold the shift, st-3 does not: the first two are
	// registered, the third is reported with a reason.
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
		{ID: "a2", StaffID: "st-2", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
	}}
	tkRepo := &fakeTimekeepingRepo{}
	svc := newTestService(schedRepo, tkRepo)

	result, err := svc.BulkRegister(context.Background(), schedule.BulkRegisterRequest{
		ShiftID:  "morning",
		Date:     "2025-03-10",
		StaffIDs: []string{"st-1", "st-2", "st-3"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"st-1", "st-2"}, result.Registered)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, "st-3", result.Rejected[0].StaffID)
	assert.Equal(t, schedule.RejectionNotScheduled, result.Rejected[0].Reason)

	require.Len(t, tkRepo.entries, 2)
	for _, e := range tkRepo.entries {
		assert.Equal(t, timekeeping.StatusOnTime, e.Status)
	}
}

func TestBulkRegisterExplicitStatus(t *testing.T) {
	schedRepo := &fakeScheduleRepo{entries: []schedule.Entry{
		{ID: "a1", StaffID: "st-1", ShiftID: "morning", WorkDate: mustDate(t, "2025-03-10")},
	}}
	tkRepo := &fakeTimekeepingRepo{}
	svc := newTestService(schedRepo, tkRepo)

	status := string(timekeeping.StatusLateEarly)
	result, err := svc.BulkRegister(context.Background(), schedule.BulkRegisterRequest{
		ShiftID:  "morning",
		Date:     "2025-03-10",
		StaffIDs: []string{"st-1"},
		Status:   &status,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"st-1"}, result.Registered)
	require.Len(t, tkRepo.entries, 1)
	assert.Equal(t, timekeeping.StatusLateEarly, tkRepo.entries[0].Status)
}

func TestBulkRegisterInvalidStatus(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeTimekeepingRepo{})
	status := "asleep"
	_, err := svc.BulkRegister(context.Background(), schedule.BulkRegisterRequest{
		ShiftID:  "morning",
		Date:     "2025-03-10",
		StaffIDs: []string{"st-1"},
		Status:   &status,
	})
	assert.Error(t, err)
}

func TestCreateAssignmentsIdempotent(t *testing.T) {
	schedRepo := &fakeScheduleRepo{}
	svc := newTestService(schedRepo, &fakeTimekeepingRepo{})

	req := schedule.CreateAssignmentsRequest{
		StaffID:  "st-1",
		ShiftIDs: []string{"morning", "evening"},
		Date:     "2025-03-10",
	}

	first, err := svc.CreateAssignments(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.CreateAssignments(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, schedRepo.entries, 2)
}

func TestCreateAssignmentsRejectsInactiveShift(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeTimekeepingRepo{})

	_, err := svc.CreateAssignments(context.Background(), schedule.CreateAssignmentsRequest{
		StaffID:  "st-1",
		ShiftIDs: []string{"retired"},
		Date:     "2025-03-10",
	})
	assert.ErrorIs(t, err, shift.ErrShiftInactive)
}

func TestCreateAssignmentsUnknownStaff(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeTimekeepingRepo{})

	_, err := svc.CreateAssignments(context.Background(), schedule.CreateAssignmentsRequest{
		StaffID:  "nobody",
		ShiftIDs: []string{"morning"},
		Date:     "2025-03-10",
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}
