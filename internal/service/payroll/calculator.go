package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/shopvui/backoffice-go/internal/domain/payroll"
	"github.com/shopvui/backoffice-go/internal/domain/staff"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/period"
)

var (
	coeffOne    = decimal.NewFromInt(1)
	percentBase = decimal.NewFromInt(100)
)

// ParsePercent converts a loosely formatted percent string ("150", "150%",
// " 150 ") into a fraction (1.5). Non-numeric characters are stripped first;
// malformed or empty input falls back to def. Never fails.
func ParsePercent(s string, def decimal.Decimal) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return def
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return def
	}
	return v.Div(percentBase)
}

// entryCoefficient resolves the multiplier for one entry under a shift rule.
// Day-off entries pay the day-off coefficient only for approved leave;
// unapproved leave (or a missing leave marker) pays nothing. Worked entries
// use the Saturday/Sunday coefficients, defaulting to 1.0 when unset.
func entryCoefficient(e timekeeping.Entry, rule staff.ShiftRule) (decimal.Decimal, period.DayType) {
	dayType := period.Classify(e.Date)

	if e.Status == timekeeping.StatusDayOff {
		if e.LeaveType != nil && *e.LeaveType == timekeeping.LeaveTypeApproved {
			return ParsePercent(rule.DayOffCoeff, decimal.Zero), dayType
		}
		return decimal.Zero, dayType
	}

	switch dayType {
	case period.DayTypeSaturday:
		return ParsePercent(rule.SaturdayCoeff, coeffOne), dayType
	case period.DayTypeSunday:
		return ParsePercent(rule.SundayCoeff, coeffOne), dayType
	default:
		return coeffOne, dayType
	}
}

// entryDetail computes one entry's contribution along with the coefficient and
// day type used, for the breakdown view.
func entryDetail(e timekeeping.Entry, settings *staff.SalarySettings) (amount, coeff decimal.Decimal, dayType period.DayType) {
	dayType = period.Classify(e.Date)

	// Fixed salaries are settled per month at the aggregate level; individual
	// entries contribute nothing.
	if settings == nil || settings.Type != staff.SalaryTypePerShift {
		return decimal.Zero, decimal.Zero, dayType
	}
	if !e.Status.CountsForPay() {
		return decimal.Zero, decimal.Zero, dayType
	}

	rule, ok := settings.RuleFor(e.ShiftID)
	if !ok {
		return decimal.Zero, decimal.Zero, dayType
	}

	coeff, dayType = entryCoefficient(e, rule)
	return rule.SalaryPerShift.Mul(coeff), coeff, dayType
}

// EntryAmount computes a single timekeeping entry's gross pay contribution.
func EntryAmount(e timekeeping.Entry, settings *staff.SalarySettings) decimal.Decimal {
	amount, _, _ := entryDetail(e, settings)
	return amount
}

// StaffPayroll computes a staff member's subtotal for the period. Fixed
// salaries pay the configured monthly amount in full regardless of period
// length or attendance; per-shift salaries sum the in-range entries. No
// entries and no settings both yield zero, not an error.
func StaffPayroll(st staff.Staff, entries []timekeeping.Entry, r period.Range) decimal.Decimal {
	if st.SalarySettings == nil {
		return decimal.Zero
	}

	switch st.SalarySettings.Type {
	case staff.SalaryTypeFixed:
		return st.SalarySettings.MonthlyAmount
	case staff.SalaryTypePerShift:
		total := decimal.Zero
		for _, e := range entries {
			if e.StaffID != st.ID || !r.Contains(e.Date) {
				continue
			}
			total = total.Add(EntryAmount(e, st.SalarySettings))
		}
		return total
	default:
		return decimal.Zero
	}
}

// BreakdownLines renders per-entry contributions for the payslip breakdown
// view. shiftNames maps shift ids to display names and may be incomplete.
func BreakdownLines(st staff.Staff, entries []timekeeping.Entry, r period.Range, shiftNames map[string]string) ([]payroll.BreakdownLine, decimal.Decimal) {
	lines := make([]payroll.BreakdownLine, 0, len(entries))
	total := decimal.Zero

	for _, e := range entries {
		if e.StaffID != st.ID || !r.Contains(e.Date) {
			continue
		}
		amount, coeff, dayType := entryDetail(e, st.SalarySettings)
		lines = append(lines, payroll.BreakdownLine{
			Date:        period.FormatDate(e.Date),
			ShiftID:     e.ShiftID,
			ShiftName:   shiftNames[e.ShiftID],
			Status:      string(e.Status),
			DayType:     string(dayType),
			Coefficient: coeff,
			Amount:      amount,
		})
		total = total.Add(amount)
	}

	return lines, total
}
