package timekeeping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopvui/backoffice-go/internal/domain/schedule"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/period"
	"github.com/shopvui/backoffice-go/internal/pkg/validator"
)

type TimekeepingServiceImpl struct {
	timekeepingRepo timekeeping.Repository
	scheduleRepo    schedule.Repository
}

func NewTimekeepingService(
	timekeepingRepo timekeeping.Repository,
	scheduleRepo schedule.Repository,
) timekeeping.Service {
	return &TimekeepingServiceImpl{
		timekeepingRepo: timekeepingRepo,
		scheduleRepo:    scheduleRepo,
	}
}

func (s *TimekeepingServiceImpl) List(ctx context.Context, startDate, endDate string) ([]timekeeping.EntryResponse, error) {
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "start_date", Message: "must be a valid yyyy-mm-dd date"}}
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "end_date", Message: "must be a valid yyyy-mm-dd date"}}
	}

	entries, err := s.timekeepingRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return timekeeping.ToResponses(entries), nil
}

func (s *TimekeepingServiceImpl) Record(ctx context.Context, req timekeeping.RecordEntryRequest) (timekeeping.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timekeeping.EntryResponse{}, err
	}

	date, _ := period.ParseDate(req.Date)

	// Attendance only exists against a schedule assignment.
	if _, err := s.scheduleRepo.GetByKey(ctx, req.StaffID, req.ShiftID, date); err != nil {
		if errors.Is(err, schedule.ErrAssignmentNotFound) {
			return timekeeping.EntryResponse{}, schedule.ErrNotScheduled
		}
		return timekeeping.EntryResponse{}, err
	}

	var leaveType *timekeeping.LeaveType
	if req.LeaveType != nil {
		lt := timekeeping.LeaveType(*req.LeaveType)
		leaveType = &lt
	}

	entry, err := s.timekeepingRepo.Upsert(ctx, timekeeping.Entry{
		ID:        uuid.NewString(),
		StaffID:   req.StaffID,
		ShiftID:   req.ShiftID,
		Date:      date,
		Status:    timekeeping.Status(req.Status),
		LeaveType: leaveType,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Note:      req.Note,
	})
	if err != nil {
		return timekeeping.EntryResponse{}, err
	}
	return timekeeping.ToResponse(entry), nil
}
