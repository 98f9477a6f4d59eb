package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft     Status = "draft"
	StatusFinalized Status = "finalized"
)

// Payroll is one payroll run for a period. While draft, bonus/penalty are
// editable and base salaries can be recomputed; finalizing freezes both.
// Payments are accepted in either state.
type Payroll struct {
	ID          string
	Code        string // "PR-<year>-<month>"
	Name        string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Payslips []Payslip
}

// Mutable reports whether bonus/penalty edits and base-salary reloads are
// still allowed.
func (p Payroll) Mutable() bool {
	return p.Status == StatusDraft
}

// TotalAmount sums the final amounts of the loaded payslips.
func (p Payroll) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, slip := range p.Payslips {
		total = total.Add(slip.FinalAmount())
	}
	return total
}

// TotalPaid sums the paid amounts of the loaded payslips.
func (p Payroll) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, slip := range p.Payslips {
		total = total.Add(slip.PaidAmount)
	}
	return total
}

// Payslip is one staff member's salary line within a payroll. All derived
// values are pure functions over the stored fields so they can never drift.
type Payslip struct {
	ID         string
	PayrollID  string
	StaffID    string
	BaseSalary decimal.Decimal
	Bonus      decimal.Decimal
	Penalty    decimal.Decimal
	PaidAmount decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	StaffName *string
	Position  *string
}

// FinalAmount is base + bonus - penalty. Not floored at zero: a penalty larger
// than the base is the owner's call and stays visible.
func (s Payslip) FinalAmount() decimal.Decimal {
	return s.BaseSalary.Add(s.Bonus).Sub(s.Penalty)
}

// RemainingAmount is the final amount less everything already paid. Negative
// when over-paid; over-payment is surfaced, never blocked.
func (s Payslip) RemainingAmount() decimal.Decimal {
	return s.FinalAmount().Sub(s.PaidAmount)
}

// PaymentMethod enum
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

var PaymentMethodValues = []string{
	string(PaymentMethodCash),
	string(PaymentMethodTransfer),
}

// Payment is a single disbursement against a payslip. Append-only: payments
// are never mutated or deleted once recorded.
type Payment struct {
	ID          string
	PayslipID   string
	Amount      decimal.Decimal
	Method      PaymentMethod
	BankName    *string
	BankAccount *string
	Note        *string
	CreatedAt   time.Time
}
