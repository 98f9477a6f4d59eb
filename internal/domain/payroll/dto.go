package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/shopvui/backoffice-go/internal/pkg/period"
	"github.com/shopvui/backoffice-go/internal/pkg/validator"
)

type CreatePayrollRequest struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Name  *string `json:"name,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid period (month 1-12, year 2020 or later)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayslipRequest struct {
	PayrollID string           `json:"-"`
	StaffID   string           `json:"-"`
	Bonus     *decimal.Decimal `json:"bonus,omitempty"`
	Penalty   *decimal.Decimal `json:"penalty,omitempty"`
}

func (r *UpdatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Bonus != nil && r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonus", Message: "must be non-negative"})
	}
	if r.Penalty != nil && r.Penalty.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "penalty", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordPaymentRequest struct {
	PayrollID   string          `json:"-"`
	StaffID     string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	BankName    *string         `json:"bank_name,omitempty"`
	BankAccount *string         `json:"bank_account,omitempty"`
	Note        *string         `json:"note,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if !validator.IsInSlice(r.Method, PaymentMethodValues) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "must be 'cash' or 'transfer'"})
	}
	if r.Method == string(PaymentMethodTransfer) {
		if r.BankName == nil || validator.IsEmpty(*r.BankName) {
			errs = append(errs, validator.ValidationError{Field: "bank_name", Message: "is required for transfer payments"})
		}
		if r.BankAccount == nil || validator.IsEmpty(*r.BankAccount) {
			errs = append(errs, validator.ValidationError{Field: "bank_account", Message: "is required for transfer payments"})
		} else if !validator.IsValidBankAccount(*r.BankAccount) {
			errs = append(errs, validator.ValidationError{Field: "bank_account", Message: "must be 6-20 digits"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	Month  *int    `json:"month,omitempty"`
	Year   *int    `json:"year,omitempty"`
	Status *string `json:"status,omitempty"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

type PayslipResponse struct {
	ID              string          `json:"id"`
	PayrollID       string          `json:"payroll_id"`
	StaffID         string          `json:"staff_id"`
	StaffName       string          `json:"staff_name"`
	Position        *string         `json:"position,omitempty"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	Bonus           decimal.Decimal `json:"bonus"`
	Penalty         decimal.Decimal `json:"penalty"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

type PayrollResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`

	Payslips []PayslipResponse `json:"payslips,omitempty"`
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type PaymentResponse struct {
	ID          string          `json:"id"`
	PayslipID   string          `json:"payslip_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	BankName    *string         `json:"bank_name,omitempty"`
	BankAccount *string         `json:"bank_account,omitempty"`
	Note        *string         `json:"note,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// BreakdownLine is one timekeeping entry's contribution to a payslip, the way
// the salary breakdown view presents it.
type BreakdownLine struct {
	Date        string          `json:"date"`
	ShiftID     string          `json:"shift_id"`
	ShiftName   string          `json:"shift_name,omitempty"`
	Status      string          `json:"status"`
	DayType     string          `json:"day_type"`
	Coefficient decimal.Decimal `json:"coefficient"`
	Amount      decimal.Decimal `json:"amount"`
}

type BreakdownResponse struct {
	PayrollID  string          `json:"payroll_id"`
	StaffID    string          `json:"staff_id"`
	SalaryType string          `json:"salary_type"`
	Lines      []BreakdownLine `json:"lines"`
	Total      decimal.Decimal `json:"total"`
}

func ToPayslipResponse(s Payslip) PayslipResponse {
	name := ""
	if s.StaffName != nil {
		name = *s.StaffName
	}
	return PayslipResponse{
		ID:              s.ID,
		PayrollID:       s.PayrollID,
		StaffID:         s.StaffID,
		StaffName:       name,
		Position:        s.Position,
		BaseSalary:      s.BaseSalary,
		Bonus:           s.Bonus,
		Penalty:         s.Penalty,
		FinalAmount:     s.FinalAmount(),
		PaidAmount:      s.PaidAmount,
		RemainingAmount: s.RemainingAmount(),
	}
}

func ToPayrollResponse(p Payroll, withPayslips bool) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		PeriodStart: period.FormatDate(p.PeriodStart),
		PeriodEnd:   period.FormatDate(p.PeriodEnd),
		Status:      string(p.Status),
		TotalAmount: p.TotalAmount(),
		PaidAmount:  p.TotalPaid(),
	}
	if withPayslips {
		resp.Payslips = make([]PayslipResponse, 0, len(p.Payslips))
		for _, s := range p.Payslips {
			resp.Payslips = append(resp.Payslips, ToPayslipResponse(s))
		}
	}
	return resp
}

func ToPaymentResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		PayslipID:   p.PayslipID,
		Amount:      p.Amount,
		Method:      string(p.Method),
		BankName:    p.BankName,
		BankAccount: p.BankAccount,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
