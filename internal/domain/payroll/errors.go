package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll not found")
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayrollAlreadyExists = errors.New("payroll already exists for this period")
	// ErrPayrollFinalized rejects draft-only mutations (bonus/penalty edits,
	// reloads, re-finalizing) on a finalized payroll.
	ErrPayrollFinalized = errors.New("payroll is finalized and can no longer be modified")
)
