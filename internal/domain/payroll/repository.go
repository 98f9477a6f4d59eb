package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines data access for payroll batches, payslips and payments.
// Multi-row mutations (create with payslips, cascade delete, payment posting,
// base-salary reloads) are single methods so they commit atomically.
type Repository interface {
	// Create persists the payroll and its payslips in one transaction.
	Create(ctx context.Context, p Payroll, slips []Payslip) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByPeriod(ctx context.Context, month, year int) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	// Delete removes the payroll and, through the ownership chain, its
	// payslips and their payments, in one transaction.
	Delete(ctx context.Context, id string) error

	ListPayslips(ctx context.Context, payrollID string) ([]Payslip, error)
	GetPayslip(ctx context.Context, payrollID, staffID string) (Payslip, error)
	UpdatePayslipAmounts(ctx context.Context, payslipID string, bonus, penalty decimal.Decimal) error
	// ReloadBaseSalaries rewrites base salaries keyed by staff id in one
	// transaction, leaving bonus/penalty/paid amounts untouched.
	ReloadBaseSalaries(ctx context.Context, payrollID string, amounts map[string]decimal.Decimal) error

	// CreatePayment appends the payment and bumps the payslip's paid amount
	// in the same transaction.
	CreatePayment(ctx context.Context, payment Payment) (Payment, error)
	ListPayments(ctx context.Context, payslipID string) ([]Payment, error)
}
