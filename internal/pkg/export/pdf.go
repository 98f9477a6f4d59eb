package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopvui/backoffice-go/internal/domain/payroll"
)

// PDFExporter renders payroll batches as PDF documents.
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// PayrollDocument renders the batch as a one-page-per-overflow summary table:
// a header with the period and status, one row per payslip, and a totals line.
func (e *PDFExporter) PayrollDocument(p payroll.PayrollResponse) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, p.Name)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Code: %s", p.Code))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s", p.PeriodStart, p.PeriodEnd))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Status: %s", p.Status))
	pdf.Ln(10)

	headers := []string{"Staff", "Position", "Base Salary", "Bonus", "Penalty", "Final", "Paid", "Remaining"}
	widths := []float64{55, 35, 32, 28, 28, 32, 32, 32}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, slip := range p.Payslips {
		position := ""
		if slip.Position != nil {
			position = *slip.Position
		}
		cells := []string{
			slip.StaffName,
			position,
			slip.BaseSalary.StringFixed(0),
			slip.Bonus.StringFixed(0),
			slip.Penalty.StringFixed(0),
			slip.FinalAmount.StringFixed(0),
			slip.PaidAmount.StringFixed(0),
			slip.RemainingAmount.StringFixed(0),
		}
		for i, c := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s    Paid: %s", p.TotalAmount.StringFixed(0), p.PaidAmount.StringFixed(0)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payroll document: %w", err)
	}

	return buf.Bytes(), nil
}
