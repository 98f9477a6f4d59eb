package schedule

import (
	"github.com/shopvui/backoffice-go/internal/pkg/period"
	"github.com/shopvui/backoffice-go/internal/pkg/validator"
)

type CreateAssignmentsRequest struct {
	StaffID  string   `json:"staff_id"`
	ShiftIDs []string `json:"shift_ids"`
	Date     string   `json:"date"` // yyyy-mm-dd
}

func (r *CreateAssignmentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if len(r.ShiftIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "shift_ids", Message: "at least one shift is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid yyyy-mm-dd date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SwapSide struct {
	StaffID string `json:"staff_id"`
	ShiftID string `json:"shift_id"`
	Date    string `json:"date"` // yyyy-mm-dd
}

type SwapRequest struct {
	From SwapSide `json:"from"`
	To   SwapSide `json:"to"`
}

func validateSide(prefix string, s SwapSide, errs validator.ValidationErrors) validator.ValidationErrors {
	if validator.IsEmpty(s.StaffID) {
		errs = append(errs, validator.ValidationError{Field: prefix + ".staff_id", Message: "is required"})
	}
	if validator.IsEmpty(s.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: prefix + ".shift_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(s.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: prefix + ".date", Message: "must be a valid yyyy-mm-dd date"})
	}
	return errs
}

func (r *SwapRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = validateSide("from", r.From, errs)
	errs = validateSide("to", r.To, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Refs converts both sides to assignment refs. Validate must pass first.
func (r *SwapRequest) Refs() (AssignmentRef, AssignmentRef) {
	fromDate, _ := period.ParseDate(r.From.Date)
	toDate, _ := period.ParseDate(r.To.Date)
	return AssignmentRef{StaffID: r.From.StaffID, ShiftID: r.From.ShiftID, WorkDate: fromDate},
		AssignmentRef{StaffID: r.To.StaffID, ShiftID: r.To.ShiftID, WorkDate: toDate}
}

type BulkRegisterRequest struct {
	ShiftID  string   `json:"shift_id"`
	Date     string   `json:"date"` // yyyy-mm-dd
	StaffIDs []string `json:"staff_ids"`
	Status   *string  `json:"status,omitempty"` // defaults to on-time
}

func (r *BulkRegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid yyyy-mm-dd date"})
	}
	if len(r.StaffIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "staff_ids", Message: "at least one staff id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Per-id rejection reasons for bulk registration.
const (
	RejectionNotScheduled = "not-scheduled"
)

type BulkRejection struct {
	StaffID string `json:"staff_id"`
	Reason  string `json:"reason"`
}

type BulkRegisterResult struct {
	Registered []string        `json:"registered"`
	Rejected   []BulkRejection `json:"rejected"`
}

type EntryResponse struct {
	ID       string `json:"id"`
	StaffID  string `json:"staff_id"`
	ShiftID  string `json:"shift_id"`
	WorkDate string `json:"work_date"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:       e.ID,
		StaffID:  e.StaffID,
		ShiftID:  e.ShiftID,
		WorkDate: period.FormatDate(e.WorkDate),
	}
}

func ToResponses(entries []Entry) []EntryResponse {
	result := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, ToResponse(e))
	}
	return result
}
