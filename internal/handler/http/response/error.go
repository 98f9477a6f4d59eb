package response

import (
	"errors"
	"net/http"

	"github.com/shopvui/backoffice-go/internal/domain/payroll"
	"github.com/shopvui/backoffice-go/internal/domain/schedule"
	"github.com/shopvui/backoffice-go/internal/domain/shift"
	"github.com/shopvui/backoffice-go/internal/domain/staff"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Directory errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftInactive):
		Conflict(w, "Shift is inactive")

	// Schedule errors
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")
	case errors.Is(err, schedule.ErrNotScheduled):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrDuplicateAssignment):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrSwapSameAssignment):
		BadRequest(w, err.Error(), nil)

	// Timekeeping errors
	case errors.Is(err, timekeeping.ErrEntryNotFound):
		NotFound(w, "Timekeeping entry not found")

	// Payroll errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already exists for this period")
	case errors.Is(err, payroll.ErrPayrollFinalized):
		Conflict(w, "Payroll is finalized")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
