package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopvui/backoffice-go/internal/domain/staff"
	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/pkg/period"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func date(s string) time.Time {
	t, err := period.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func perShiftSettings(rules ...staff.ShiftRule) *staff.SalarySettings {
	return &staff.SalarySettings{Type: staff.SalaryTypePerShift, ShiftRules: rules}
}

func entry(staffID, shiftID, day string, status timekeeping.Status) timekeeping.Entry {
	return timekeeping.Entry{StaffID: staffID, ShiftID: shiftID, Date: date(day), Status: status}
}

func dayOffEntry(staffID, shiftID, day string, leave timekeeping.LeaveType) timekeeping.Entry {
	e := entry(staffID, shiftID, day, timekeeping.StatusDayOff)
	e.LeaveType = &leave
	return e
}

func TestParsePercent(t *testing.T) {
	def := decimal.NewFromInt(1)
	cases := []struct {
		input string
		want  string
	}{
		{"150", "1.5"},
		{"150%", "1.5"},
		{" 150 ", "1.5"},
		{"100", "1"},
		{"50", "0.5"},
		{"12.5", "0.125"},
		{"", "1"},       // empty falls back to default
		{"abc", "1"},    // no digits falls back to default
		{"1.2.3", "1"},  // unparseable after stripping falls back
		{"x200y", "2"},  // stray characters are stripped
	}
	for _, c := range cases {
		got := ParsePercent(c.input, def)
		want, _ := decimal.NewFromString(c.want)
		assert.Truef(t, got.Equal(want), "ParsePercent(%q) = %s, want %s", c.input, got, want)
	}
}

func TestEntryAmountZeroForUnworkedStatuses(t *testing.T) {
	settings := perShiftSettings(staff.ShiftRule{
		ShiftID:        "shift-1",
		SalaryPerShift: d(200_000),
		SaturdayCoeff:  "150",
		SundayCoeff:    "200",
	})

	// Missing and not-checked entries never pay, even on coefficient days.
	for _, day := range []string{"2025-03-10", "2025-03-15", "2025-03-16"} {
		for _, status := range []timekeeping.Status{timekeeping.StatusMissing, timekeeping.StatusNotChecked} {
			amount := EntryAmount(entry("st-1", "shift-1", day, status), settings)
			assert.Truef(t, amount.IsZero(), "status %s on %s should pay zero, got %s", status, day, amount)
		}
	}
}

func TestEntryAmountCoefficientDefaults(t *testing.T) {
	// No Saturday/Sunday coefficients configured: both default to x1.0.
	settings := perShiftSettings(staff.ShiftRule{
		ShiftID:        "shift-1",
		SalaryPerShift: d(200_000),
	})

	sat := EntryAmount(entry("st-1", "shift-1", "2025-03-15", timekeeping.StatusOnTime), settings)
	sun := EntryAmount(entry("st-1", "shift-1", "2025-03-16", timekeeping.StatusOnTime), settings)
	assert.True(t, sat.Equal(d(200_000)))
	assert.True(t, sun.Equal(d(200_000)))
}

func TestEntryAmountUnapprovedLeaveIsUnpaid(t *testing.T) {
	settings := perShiftSettings(staff.ShiftRule{
		ShiftID:        "shift-1",
		SalaryPerShift: d(200_000),
		DayOffCoeff:    "50",
	})

	approved := EntryAmount(dayOffEntry("st-1", "shift-1", "2025-03-12", timekeeping.LeaveTypeApproved), settings)
	unapproved := EntryAmount(dayOffEntry("st-1", "shift-1", "2025-03-12", timekeeping.LeaveTypeUnapproved), settings)
	noMarker := EntryAmount(entry("st-1", "shift-1", "2025-03-12", timekeeping.StatusDayOff), settings)

	assert.True(t, approved.Equal(d(100_000)))
	assert.True(t, unapproved.IsZero())
	assert.True(t, noMarker.IsZero())
}

func TestEntryAmountDayOffCoeffDefaultsToZero(t *testing.T) {
	settings := perShiftSettings(staff.ShiftRule{
		ShiftID:        "shift-1",
		SalaryPerShift: d(200_000),
	})
	amount := EntryAmount(dayOffEntry("st-1", "shift-1", "2025-03-12", timekeeping.LeaveTypeApproved), settings)
	assert.True(t, amount.IsZero())
}

func TestEntryAmountFallsBackToFirstRule(t *testing.T) {
	// An entry for a shift with no exact rule uses the first configured rule.
	settings := perShiftSettings(
		staff.ShiftRule{ShiftID: "shift-1", SalaryPerShift: d(200_000)},
		staff.ShiftRule{ShiftID: "shift-2", SalaryPerShift: d(300_000)},
	)
	amount := EntryAmount(entry("st-1", "shift-9", "2025-03-10", timekeeping.StatusOnTime), settings)
	assert.True(t, amount.Equal(d(200_000)))
}

func TestEntryAmountNoSettings(t *testing.T) {
	amount := EntryAmount(entry("st-1", "shift-1", "2025-03-10", timekeeping.StatusOnTime), nil)
	assert.True(t, amount.IsZero())

	empty := perShiftSettings()
	amount = EntryAmount(entry("st-1", "shift-1", "2025-03-10", timekeeping.StatusOnTime), empty)
	assert.True(t, amount.IsZero())
}

func TestEntryAmountFixedSalaryPaysNothingPerEntry(t *testing.T) {
	settings := &staff.SalarySettings{Type: staff.SalaryTypeFixed, MonthlyAmount: d(10_000_000)}
	amount := EntryAmount(entry("st-1", "shift-1", "2025-03-10", timekeeping.StatusOnTime), settings)
	assert.True(t, amount.IsZero())
}

func TestStaffPayrollFixedIgnoresPeriodAndAttendance(t *testing.T) {
	member := staff.Staff{
		ID: "st-1",
		SalarySettings: &staff.SalarySettings{
			Type:          staff.SalaryTypeFixed,
			MonthlyAmount: d(12_000_000),
		},
	}

	fullMonth := period.Month(3, 2025)
	partial, _ := period.New(date("2025-03-10"), date("2025-03-12"))

	entries := []timekeeping.Entry{
		entry("st-1", "shift-1", "2025-03-10", timekeeping.StatusOnTime),
		entry("st-1", "shift-1", "2025-03-11", timekeeping.StatusMissing),
	}

	assert.True(t, StaffPayroll(member, nil, fullMonth).Equal(d(12_000_000)))
	assert.True(t, StaffPayroll(member, entries, fullMonth).Equal(d(12_000_000)))
	assert.True(t, StaffPayroll(member, entries, partial).Equal(d(12_000_000)))
}

func TestStaffPayrollPerShiftScenario(t *testing.T) {
	// Mon worked 200k, Sat worked 300k (x1.5), Sun approved day-off 100k (the
	// day-off coefficient wins over the Sunday one), Tue missing 0.
	member := staff.Staff{
		ID: "st-x",
		SalarySettings: perShiftSettings(staff.ShiftRule{
			ShiftID:        "shift-1",
			SalaryPerShift: d(200_000),
			SaturdayCoeff:  "150",
			SundayCoeff:    "200",
			DayOffCoeff:    "50",
		}),
	}

	entries := []timekeeping.Entry{
		entry("st-x", "shift-1", "2025-03-10", timekeeping.StatusOnTime),                  // Monday
		entry("st-x", "shift-1", "2025-03-15", timekeeping.StatusOnTime),                  // Saturday
		dayOffEntry("st-x", "shift-1", "2025-03-16", timekeeping.LeaveTypeApproved),       // Sunday
		entry("st-x", "shift-1", "2025-03-11", timekeeping.StatusMissing),                 // Tuesday
		entry("someone-else", "shift-1", "2025-03-10", timekeeping.StatusOnTime),          // other staff
		entry("st-x", "shift-1", "2025-04-01", timekeeping.StatusOnTime),                  // outside period
	}

	total := StaffPayroll(member, entries, period.Month(3, 2025))
	assert.Truef(t, total.Equal(d(600_000)), "got %s", total)
}

func TestStaffPayrollNoEntries(t *testing.T) {
	member := staff.Staff{
		ID:             "st-1",
		SalarySettings: perShiftSettings(staff.ShiftRule{ShiftID: "shift-1", SalaryPerShift: d(200_000)}),
	}
	total := StaffPayroll(member, nil, period.Month(3, 2025))
	assert.True(t, total.IsZero())

	member.SalarySettings = nil
	assert.True(t, StaffPayroll(member, nil, period.Month(3, 2025)).IsZero())
}

func TestBreakdownLines(t *testing.T) {
	member := staff.Staff{
		ID: "st-x",
		SalarySettings: perShiftSettings(staff.ShiftRule{
			ShiftID:        "shift-1",
			SalaryPerShift: d(200_000),
			SaturdayCoeff:  "150",
		}),
	}
	entries := []timekeeping.Entry{
		entry("st-x", "shift-1", "2025-03-10", timekeeping.StatusOnTime),
		entry("st-x", "shift-1", "2025-03-15", timekeeping.StatusOnTime),
		entry("st-x", "shift-1", "2025-03-11", timekeeping.StatusNotChecked),
	}
	names := map[string]string{"shift-1": "Morning"}

	lines, total := BreakdownLines(member, entries, period.Month(3, 2025), names)

	assert.Len(t, lines, 3)
	assert.True(t, total.Equal(d(500_000)))

	assert.Equal(t, "2025-03-10", lines[0].Date)
	assert.Equal(t, "Morning", lines[0].ShiftName)
	assert.Equal(t, "weekday", lines[0].DayType)
	assert.True(t, lines[0].Amount.Equal(d(200_000)))

	assert.Equal(t, "saturday", lines[1].DayType)
	assert.True(t, lines[1].Amount.Equal(d(300_000)))

	// Unverified entries appear in the breakdown with a zero amount.
	assert.True(t, lines[2].Amount.IsZero())
}
