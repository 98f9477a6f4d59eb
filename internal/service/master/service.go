package master

import (
	"context"

	"github.com/shopvui/backoffice-go/internal/domain/shift"
	"github.com/shopvui/backoffice-go/internal/domain/staff"
)

// Service exposes the read-only staff and shift directories.
type Service interface {
	ListStaff(ctx context.Context, activeOnly bool) ([]staff.StaffResponse, error)
	GetStaff(ctx context.Context, id string) (staff.StaffResponse, error)
	ListShifts(ctx context.Context, activeOnly bool) ([]shift.ShiftResponse, error)
	GetShift(ctx context.Context, id string) (shift.ShiftResponse, error)
}

type MasterServiceImpl struct {
	staffRepo staff.StaffRepository
	shiftRepo shift.ShiftRepository
}

func NewMasterService(staffRepo staff.StaffRepository, shiftRepo shift.ShiftRepository) Service {
	return &MasterServiceImpl{
		staffRepo: staffRepo,
		shiftRepo: shiftRepo,
	}
}

func (s *MasterServiceImpl) ListStaff(ctx context.Context, activeOnly bool) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return staff.ToResponses(members), nil
}

func (s *MasterServiceImpl) GetStaff(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.ToResponse(member), nil
}

func (s *MasterServiceImpl) ListShifts(ctx context.Context, activeOnly bool) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return shift.ToResponses(shifts), nil
}

func (s *MasterServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(sh), nil
}
