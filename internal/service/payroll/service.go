package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopvui/backoffice-go/internal/domain/payroll"
	"github.com/shopvui/backoffice-go/internal/domain/shift"
	"github.com/shopvui/backoffice-go/internal/domain/staff"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/period"
)

// Exporter renders a payroll batch into a binary document. The concrete
// implementation lives in pkg/export; anything that can produce bytes works.
type Exporter interface {
	PayrollDocument(p payroll.PayrollResponse) ([]byte, error)
}

type PayrollServiceImpl struct {
	payrollRepo     payroll.Repository
	staffRepo       staff.StaffRepository
	shiftRepo       shift.ShiftRepository
	timekeepingRepo timekeeping.Repository
	exporter        Exporter
}

func NewPayrollService(
	payrollRepo payroll.Repository,
	staffRepo staff.StaffRepository,
	shiftRepo shift.ShiftRepository,
	timekeepingRepo timekeeping.Repository,
	exporter Exporter,
) payroll.Service {
	return &PayrollServiceImpl{
		payrollRepo:     payrollRepo,
		staffRepo:       staffRepo,
		shiftRepo:       shiftRepo,
		timekeepingRepo: timekeepingRepo,
		exporter:        exporter,
	}
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	payrolls, totalCount, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	data := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		data = append(data, payroll.ToPayrollResponse(p, false))
	}

	return payroll.ListPayrollResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	// One payroll batch per period.
	_, err := s.payrollRepo.GetByPeriod(ctx, req.Month, req.Year)
	if err == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadyExists
	}
	if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollResponse{}, err
	}

	r := period.Month(req.Month, req.Year)

	members, err := s.staffRepo.List(ctx, true)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}

	entries, err := s.timekeepingRepo.ListRange(ctx, r.Start, r.End)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list timekeeping entries: %w", err)
	}

	name := fmt.Sprintf("Payroll %02d/%d", req.Month, req.Year)
	if req.Name != nil && *req.Name != "" {
		name = *req.Name
	}

	p := payroll.Payroll{
		ID:          uuid.NewString(),
		Code:        fmt.Sprintf("PR-%d-%02d", req.Year, req.Month),
		Name:        name,
		PeriodStart: r.Start,
		PeriodEnd:   r.End,
		Status:      payroll.StatusDraft,
	}

	var slips []payroll.Payslip
	for _, m := range members {
		if !m.PayrollEligible() {
			continue
		}
		fullName := m.FullName
		position := m.Position
		slips = append(slips, payroll.Payslip{
			ID:         uuid.NewString(),
			PayrollID:  p.ID,
			StaffID:    m.ID,
			BaseSalary: StaffPayroll(m, entries, r),
			Bonus:      decimal.Zero,
			Penalty:    decimal.Zero,
			PaidAmount: decimal.Zero,
			StaffName:  &fullName,
			Position:   &position,
		})
	}

	created, err := s.payrollRepo.Create(ctx, p, slips)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	created.Payslips = slips

	return payroll.ToPayrollResponse(created, true), nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.loadWithPayslips(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToPayrollResponse(p, true), nil
}

func (s *PayrollServiceImpl) Reload(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !p.Mutable() {
		return payroll.PayrollResponse{}, payroll.ErrPayrollFinalized
	}

	slips, err := s.payrollRepo.ListPayslips(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	members, err := s.staffRepo.List(ctx, false)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}
	memberIdx := make(map[string]staff.Staff, len(members))
	for _, m := range members {
		memberIdx[m.ID] = m
	}

	r := period.Range{Start: p.PeriodStart, End: p.PeriodEnd}
	entries, err := s.timekeepingRepo.ListRange(ctx, r.Start, r.End)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list timekeeping entries: %w", err)
	}

	// Staff no longer in the directory keep their last computed base.
	amounts := make(map[string]decimal.Decimal, len(slips))
	for _, slip := range slips {
		m, ok := memberIdx[slip.StaffID]
		if !ok {
			continue
		}
		amounts[slip.StaffID] = StaffPayroll(m, entries, r)
	}

	if err := s.payrollRepo.ReloadBaseSalaries(ctx, id, amounts); err != nil {
		return payroll.PayrollResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *PayrollServiceImpl) Finalize(ctx context.Context, id string) error {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status == payroll.StatusFinalized {
		return payroll.ErrPayrollFinalized
	}

	// Totals are live-computed; finalizing only flips the mutability gate.
	return s.payrollRepo.UpdateStatus(ctx, id, payroll.StatusFinalized)
}

func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.payrollRepo.GetByID(ctx, id); err != nil {
		return err
	}
	// Deletion is allowed in any lifecycle state; payslips and payments go
	// with the batch.
	return s.payrollRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) UpdatePayslip(ctx context.Context, req payroll.UpdatePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	p, err := s.payrollRepo.GetByID(ctx, req.PayrollID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if !p.Mutable() {
		return payroll.PayslipResponse{}, payroll.ErrPayrollFinalized
	}

	slip, err := s.payrollRepo.GetPayslip(ctx, req.PayrollID, req.StaffID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	bonus := slip.Bonus
	penalty := slip.Penalty
	if req.Bonus != nil {
		bonus = *req.Bonus
	}
	if req.Penalty != nil {
		penalty = *req.Penalty
	}

	if err := s.payrollRepo.UpdatePayslipAmounts(ctx, slip.ID, bonus, penalty); err != nil {
		return payroll.PayslipResponse{}, err
	}

	updated, err := s.payrollRepo.GetPayslip(ctx, req.PayrollID, req.StaffID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.ToPayslipResponse(updated), nil
}

func (s *PayrollServiceImpl) RecordPayment(ctx context.Context, req payroll.RecordPaymentRequest) (payroll.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaymentResponse{}, err
	}

	// Payments are accepted in both draft and finalized states; the payroll
	// lookup is only an existence check.
	if _, err := s.payrollRepo.GetByID(ctx, req.PayrollID); err != nil {
		return payroll.PaymentResponse{}, err
	}

	slip, err := s.payrollRepo.GetPayslip(ctx, req.PayrollID, req.StaffID)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	payment := payroll.Payment{
		ID:          uuid.NewString(),
		PayslipID:   slip.ID,
		Amount:      req.Amount,
		Method:      payroll.PaymentMethod(req.Method),
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
		Note:        req.Note,
	}

	created, err := s.payrollRepo.CreatePayment(ctx, payment)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	return payroll.ToPaymentResponse(created), nil
}

func (s *PayrollServiceImpl) ListPayments(ctx context.Context, payrollID, staffID string) ([]payroll.PaymentResponse, error) {
	slip, err := s.payrollRepo.GetPayslip(ctx, payrollID, staffID)
	if err != nil {
		return nil, err
	}

	payments, err := s.payrollRepo.ListPayments(ctx, slip.ID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PaymentResponse, 0, len(payments))
	for _, pm := range payments {
		result = append(result, payroll.ToPaymentResponse(pm))
	}
	return result, nil
}

func (s *PayrollServiceImpl) Breakdown(ctx context.Context, payrollID, staffID string) (payroll.BreakdownResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}
	if _, err := s.payrollRepo.GetPayslip(ctx, payrollID, staffID); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	r := period.Range{Start: p.PeriodStart, End: p.PeriodEnd}
	entries, err := s.timekeepingRepo.ListStaffRange(ctx, staffID, r.Start, r.End)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	shiftNames := make(map[string]string)
	if shifts, err := s.shiftRepo.List(ctx, false); err == nil {
		for _, sh := range shifts {
			shiftNames[sh.ID] = sh.Name
		}
	}

	lines, _ := BreakdownLines(member, entries, r, shiftNames)

	salaryType := ""
	if member.SalarySettings != nil {
		salaryType = string(member.SalarySettings.Type)
	}

	return payroll.BreakdownResponse{
		PayrollID:  payrollID,
		StaffID:    staffID,
		SalaryType: salaryType,
		Lines:      lines,
		Total:      StaffPayroll(member, entries, r),
	}, nil
}

func (s *PayrollServiceImpl) Export(ctx context.Context, id string) ([]byte, error) {
	p, err := s.loadWithPayslips(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.exporter.PayrollDocument(payroll.ToPayrollResponse(p, true))
}

func (s *PayrollServiceImpl) loadWithPayslips(ctx context.Context, id string) (payroll.Payroll, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.Payroll{}, err
	}
	slips, err := s.payrollRepo.ListPayslips(ctx, id)
	if err != nil {
		return payroll.Payroll{}, err
	}
	p.Payslips = slips
	return p, nil
}
