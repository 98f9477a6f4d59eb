package timekeeping

import (
	"github.com/shopvui/backoffice-go/internal/pkg/period"
	"github.com/shopvui/backoffice-go/internal/pkg/validator"
)

type RecordEntryRequest struct {
	StaffID   string  `json:"staff_id"`
	ShiftID   string  `json:"shift_id"`
	Date      string  `json:"date"` // yyyy-mm-dd
	Status    string  `json:"status"`
	LeaveType *string `json:"leave_type,omitempty"`
	CheckIn   *string `json:"check_in,omitempty"`
	CheckOut  *string `json:"check_out,omitempty"`
	Note      *string `json:"note,omitempty"`
}

func (r *RecordEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid yyyy-mm-dd date"})
	}
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid attendance status"})
	}
	if r.LeaveType != nil && !validator.IsInSlice(*r.LeaveType, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "is not a valid leave type"})
	}
	if r.LeaveType != nil && r.Status != string(StatusDayOff) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "only applies to day-off entries"})
	}
	if r.CheckIn != nil && !validator.IsValidTimeOfDay(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be HH:MM"})
	}
	if r.CheckOut != nil && !validator.IsValidTimeOfDay(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	ShiftID   string  `json:"shift_id"`
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	LeaveType *string `json:"leave_type,omitempty"`
	CheckIn   *string `json:"check_in,omitempty"`
	CheckOut  *string `json:"check_out,omitempty"`
	Note      *string `json:"note,omitempty"`
}

func ToResponse(e Entry) EntryResponse {
	var leaveType *string
	if e.LeaveType != nil {
		s := string(*e.LeaveType)
		leaveType = &s
	}
	return EntryResponse{
		ID:        e.ID,
		StaffID:   e.StaffID,
		ShiftID:   e.ShiftID,
		Date:      period.FormatDate(e.Date),
		Status:    string(e.Status),
		LeaveType: leaveType,
		CheckIn:   e.CheckIn,
		CheckOut:  e.CheckOut,
		Note:      e.Note,
	}
}

func ToResponses(entries []Entry) []EntryResponse {
	result := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, ToResponse(e))
	}
	return result
}
