package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/garudasec/billing-backend-go/internal/domain/payroll"
)

// RenderPayslip renders a single salary slip as an A4 PDF.
func (g *Generator) RenderPayslip(slip payroll.PayrollSlip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, g.companyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, g.companyAddress)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Salary Slip - %02d/%d", slip.PeriodMonth, slip.PeriodYear))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	if slip.EmployeeName != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", *slip.EmployeeName))
		pdf.Ln(6)
	}
	if slip.EmployeeCode != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Code: %s", *slip.EmployeeCode))
		pdf.Ln(6)
	}
	if slip.Designation != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Designation: %s", *slip.Designation))
		pdf.Ln(6)
	}
	if slip.UnitName != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Posting: %s", *slip.UnitName))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(120, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, value, "1", 1, "R", false, 0, "")
	}

	row("Earnings", "", true)
	row("Basic", slip.Basic.StringFixed(2), false)
	row("HRA", slip.HRA.StringFixed(2), false)
	row("Other Allowances", slip.Allowances.StringFixed(2), false)
	row("Gross Salary", slip.GrossSalary.StringFixed(2), true)

	row("Deductions", "", true)
	row("Provident Fund", slip.PF.StringFixed(2), false)
	row("Professional Tax", slip.ProfTax.StringFixed(2), false)
	row("Income Tax (TDS)", slip.IncomeTax.StringFixed(2), false)
	row("Total Deductions", slip.Deductions.StringFixed(2), true)

	row("Net Pay", slip.NetPay.StringFixed(2), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return buf.Bytes(), nil
}
