package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopvui/backoffice-go/internal/domain/schedule"
	"github.com/shopvui/backoffice-go/internal/domain/shift"
	"github.com/shopvui/backoffice-go/internal/domain/staff"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/period"
	"github.com/shopvui/backoffice-go/internal/pkg/validator"
)

type ScheduleServiceImpl struct {
	scheduleRepo    schedule.Repository
	timekeepingRepo timekeeping.Repository
	staffRepo       staff.StaffRepository
	shiftRepo       shift.ShiftRepository
}

func NewScheduleService(
	scheduleRepo schedule.Repository,
	timekeepingRepo timekeeping.Repository,
	staffRepo staff.StaffRepository,
	shiftRepo shift.ShiftRepository,
) schedule.Service {
	return &ScheduleServiceImpl{
		scheduleRepo:    scheduleRepo,
		timekeepingRepo: timekeepingRepo,
		staffRepo:       staffRepo,
		shiftRepo:       shiftRepo,
	}
}

func (s *ScheduleServiceImpl) List(ctx context.Context, staffID *string, startDate, endDate string) ([]schedule.EntryResponse, error) {
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "start_date", Message: "must be a valid yyyy-mm-dd date"}}
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "end_date", Message: "must be a valid yyyy-mm-dd date"}}
	}

	entries, err := s.scheduleRepo.List(ctx, staffID, start, end)
	if err != nil {
		return nil, err
	}
	return schedule.ToResponses(entries), nil
}

func (s *ScheduleServiceImpl) CreateAssignments(ctx context.Context, req schedule.CreateAssignmentsRequest) ([]schedule.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return nil, err
	}

	date, _ := period.ParseDate(req.Date)

	var created []schedule.Entry
	for _, shiftID := range req.ShiftIDs {
		sh, err := s.shiftRepo.GetByID(ctx, shiftID)
		if err != nil {
			return nil, err
		}
		if !sh.IsActive {
			return nil, shift.ErrShiftInactive
		}

		entry, err := s.scheduleRepo.Upsert(ctx, schedule.Entry{
			ID:       uuid.NewString(),
			StaffID:  req.StaffID,
			ShiftID:  shiftID,
			WorkDate: date,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to assign shift %s: %w", shiftID, err)
		}
		created = append(created, entry)
	}

	return schedule.ToResponses(created), nil
}

func (s *ScheduleServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	return s.scheduleRepo.Delete(ctx, id)
}

func (s *ScheduleServiceImpl) Swap(ctx context.Context, req schedule.SwapRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	from, to := req.Refs()

	// Validate against a snapshot first so callers get the specific conflict.
	// The repository re-checks the same guards under row locks before
	// mutating anything, so a racing writer cannot sneak past this read.
	if err := s.validateSwap(ctx, from, to); err != nil {
		return err
	}

	return s.scheduleRepo.Swap(ctx, from, to)
}

// validateSwap enforces the swap guard against snapshot reads:
// both assignments must exist, neither may have a recorded attendance, the
// exchange must not duplicate an existing assignment, and swapping an
// assignment with itself is rejected.
func (s *ScheduleServiceImpl) validateSwap(ctx context.Context, from, to schedule.AssignmentRef) error {
	if from.Equal(to) {
		return schedule.ErrSwapSameAssignment
	}

	for _, side := range []schedule.AssignmentRef{from, to} {
		if _, err := s.scheduleRepo.GetByKey(ctx, side.StaffID, side.ShiftID, side.WorkDate); err != nil {
			if errors.Is(err, schedule.ErrAssignmentNotFound) {
				return fmt.Errorf("%w: staff %s, shift %s on %s",
					schedule.ErrNotScheduled, side.StaffID, side.ShiftID, period.FormatDate(side.WorkDate))
			}
			return err
		}

		entry, err := s.timekeepingRepo.GetByKey(ctx, side.StaffID, side.ShiftID, side.WorkDate)
		if err != nil {
			if errors.Is(err, timekeeping.ErrEntryNotFound) {
				continue
			}
			return err
		}
		if entry.Status.Recorded() {
			return fmt.Errorf("%w: staff %s, shift %s on %s has status %s",
				schedule.ErrAlreadyCheckedIn, side.StaffID, side.ShiftID,
				period.FormatDate(side.WorkDate), entry.Status)
		}
	}

	// The exchange keeps each (staff, date) pair and trades the shifts:
	// after the swap the from-side holds to.ShiftID and vice versa. Either
	// resulting assignment already existing is a duplicate.
	if err := s.checkDuplicate(ctx, from, to); err != nil {
		return err
	}
	return s.checkDuplicate(ctx, to, from)
}

// checkDuplicate rejects the swap when side would end up holding other's
// shift it already has. The counterpart row itself is not a conflict: for
// same-staff same-date swaps it is the row being exchanged.
func (s *ScheduleServiceImpl) checkDuplicate(ctx context.Context, side, other schedule.AssignmentRef) error {
	resulting := schedule.AssignmentRef{StaffID: side.StaffID, ShiftID: other.ShiftID, WorkDate: side.WorkDate}
	if resulting.Equal(other) {
		return nil
	}

	_, err := s.scheduleRepo.GetByKey(ctx, resulting.StaffID, resulting.ShiftID, resulting.WorkDate)
	if err == nil {
		return fmt.Errorf("%w: staff %s, shift %s on %s",
			schedule.ErrDuplicateAssignment, resulting.StaffID, resulting.ShiftID,
			period.FormatDate(resulting.WorkDate))
	}
	if errors.Is(err, schedule.ErrAssignmentNotFound) {
		return nil
	}
	return err
}

func (s *ScheduleServiceImpl) BulkRegister(ctx context.Context, req schedule.BulkRegisterRequest) (schedule.BulkRegisterResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.BulkRegisterResult{}, err
	}

	status := timekeeping.StatusOnTime
	if req.Status != nil {
		if !validator.IsInSlice(*req.Status, timekeeping.StatusValues) {
			return schedule.BulkRegisterResult{}, validator.ValidationErrors{{Field: "status", Message: "is not a valid attendance status"}}
		}
		status = timekeeping.Status(*req.Status)
	}

	date, _ := period.ParseDate(req.Date)

	result := schedule.BulkRegisterResult{
		Registered: []string{},
		Rejected:   []schedule.BulkRejection{},
	}

	// Per-id partial success: valid ids proceed, invalid ids are reported.
	for _, staffID := range req.StaffIDs {
		_, err := s.scheduleRepo.GetByKey(ctx, staffID, req.ShiftID, date)
		if err != nil {
			if errors.Is(err, schedule.ErrAssignmentNotFound) {
				result.Rejected = append(result.Rejected, schedule.BulkRejection{
					StaffID: staffID,
					Reason:  schedule.RejectionNotScheduled,
				})
				continue
			}
			return schedule.BulkRegisterResult{}, err
		}

		_, err = s.timekeepingRepo.Upsert(ctx, timekeeping.Entry{
			ID:      uuid.NewString(),
			StaffID: staffID,
			ShiftID: req.ShiftID,
			Date:    date,
			Status:  status,
		})
		if err != nil {
			return schedule.BulkRegisterResult{}, fmt.Errorf("failed to register attendance for staff %s: %w", staffID, err)
		}
		result.Registered = append(result.Registered, staffID)
	}

	return result, nil
}
