package payroll

import "context"

type Service interface {
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	Get(ctx context.Context, id string) (PayrollResponse, error)
	// Reload recomputes every payslip's base salary from current timekeeping
	// data. Draft payrolls only; bonus, penalty and payments are preserved.
	Reload(ctx context.Context, id string) (PayrollResponse, error)
	// Finalize is the one-way draft -> finalized transition.
	Finalize(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	UpdatePayslip(ctx context.Context, req UpdatePayslipRequest) (PayslipResponse, error)
	RecordPayment(ctx context.Context, req RecordPaymentRequest) (PaymentResponse, error)
	ListPayments(ctx context.Context, payrollID, staffID string) ([]PaymentResponse, error)
	Breakdown(ctx context.Context, payrollID, staffID string) (BreakdownResponse, error)
	Export(ctx context.Context, id string) ([]byte, error)
}
