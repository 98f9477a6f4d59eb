package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestPayslipFinalAmount(t *testing.T) {
	slip := Payslip{
		BaseSalary: d(5_000_000),
		Bonus:      d(300_000),
		Penalty:    d(100_000),
	}
	assert.True(t, slip.FinalAmount().Equal(d(5_200_000)))
}

func TestPayslipFinalAmountCanGoNegative(t *testing.T) {
	// A penalty larger than base + bonus is not clamped.
	slip := Payslip{
		BaseSalary: d(1_000_000),
		Bonus:      decimal.Zero,
		Penalty:    d(1_500_000),
	}
	assert.True(t, slip.FinalAmount().Equal(d(-500_000)))
}

func TestPayslipRemainingAmount(t *testing.T) {
	slip := Payslip{
		BaseSalary: d(5_000_000),
		Bonus:      decimal.Zero,
		Penalty:    decimal.Zero,
	}

	// First payment leaves a positive remainder.
	slip.PaidAmount = slip.PaidAmount.Add(d(3_000_000))
	assert.True(t, slip.RemainingAmount().Equal(d(2_000_000)))

	// Over-payment drives the remainder negative; it is surfaced, not blocked.
	slip.PaidAmount = slip.PaidAmount.Add(d(2_500_000))
	assert.True(t, slip.PaidAmount.Equal(d(5_500_000)))
	assert.True(t, slip.RemainingAmount().Equal(d(-500_000)))
}

func TestPayrollTotals(t *testing.T) {
	p := Payroll{
		Payslips: []Payslip{
			{BaseSalary: d(4_000_000), Bonus: d(500_000), PaidAmount: d(2_000_000)},
			{BaseSalary: d(3_000_000), Penalty: d(200_000), PaidAmount: d(1_000_000)},
		},
	}
	assert.True(t, p.TotalAmount().Equal(d(7_300_000)))
	assert.True(t, p.TotalPaid().Equal(d(3_000_000)))
}

func TestRecordPaymentRequestValidate(t *testing.T) {
	bank := "Vietcombank"
	account := "0123456789"
	shortAccount := "123"

	cases := []struct {
		name    string
		req     RecordPaymentRequest
		wantErr bool
	}{
		{"valid cash", RecordPaymentRequest{Amount: d(100_000), Method: "cash"}, false},
		{"valid transfer", RecordPaymentRequest{Amount: d(100_000), Method: "transfer", BankName: &bank, BankAccount: &account}, false},
		{"zero amount", RecordPaymentRequest{Amount: decimal.Zero, Method: "cash"}, true},
		{"negative amount", RecordPaymentRequest{Amount: d(-1), Method: "cash"}, true},
		{"bad method", RecordPaymentRequest{Amount: d(100_000), Method: "cheque"}, true},
		{"transfer without bank fields", RecordPaymentRequest{Amount: d(100_000), Method: "transfer"}, true},
		{"transfer with short account", RecordPaymentRequest{Amount: d(100_000), Method: "transfer", BankName: &bank, BankAccount: &shortAccount}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePayslipRequestValidate(t *testing.T) {
	neg := d(-1)
	pos := d(100_000)

	req := UpdatePayslipRequest{Bonus: &pos, Penalty: &pos}
	assert.NoError(t, req.Validate())

	req = UpdatePayslipRequest{Bonus: &neg}
	assert.Error(t, req.Validate())

	req = UpdatePayslipRequest{Penalty: &neg}
	assert.Error(t, req.Validate())
}
