package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryType enum
type SalaryType string

const (
	SalaryTypeFixed    SalaryType = "fixed"
	SalaryTypePerShift SalaryType = "per_shift"
)

var SalaryTypeValues = []string{
	string(SalaryTypeFixed),
	string(SalaryTypePerShift),
}

// ShiftRule is one per-shift pay rule. Coefficients keep their configured
// percent-string form ("150" = x1.5); parsing happens at computation time with
// safe defaults, never at load time.
type ShiftRule struct {
	ShiftID        string          `json:"shift_id"`
	SalaryPerShift decimal.Decimal `json:"salary_per_shift"`
	SaturdayCoeff  string          `json:"saturday_coeff,omitempty"`
	SundayCoeff    string          `json:"sunday_coeff,omitempty"`
	DayOffCoeff    string          `json:"day_off_coeff,omitempty"`
}

// SalarySettings holds exactly one active salary variant. A nil settings
// pointer on Staff means the member earns nothing.
type SalarySettings struct {
	Type          SalaryType      `json:"type"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount,omitempty"`
	ShiftRules    []ShiftRule     `json:"shift_rules,omitempty"`
}

// RuleFor resolves the pay rule for a shift. When no exact match exists the
// first configured rule is used instead; the reference system behaves this way
// and historical payroll depends on it. Returns false only when no rules are
// configured at all.
func (s SalarySettings) RuleFor(shiftID string) (ShiftRule, bool) {
	for _, rule := range s.ShiftRules {
		if rule.ShiftID == shiftID {
			return rule, true
		}
	}
	if len(s.ShiftRules) > 0 {
		return s.ShiftRules[0], true
	}
	return ShiftRule{}, false
}

// Position values with payroll significance.
const PositionManager = "manager"

type Staff struct {
	ID             string
	FullName       string
	Position       string
	SalarySettings *SalarySettings
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PayrollEligible reports whether the staff member receives a payslip when a
// payroll batch is created. Managers are settled outside this system.
func (s Staff) PayrollEligible() bool {
	return s.Position != PositionManager
}
