package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/garudasec/billing-backend-go/internal/domain/invoice"
)

// RenderInvoice renders a tax invoice as an A4 PDF: letterhead, line
// item table, and the footer totals exactly as persisted.
func (g *Generator) RenderInvoice(inv invoice.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, g.companyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, g.companyAddress)
	pdf.Ln(5)
	if g.companyGSTIN != "" {
		pdf.Cell(0, 6, fmt.Sprintf("GSTIN: %s", g.companyGSTIN))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Tax Invoice %s", inv.InvoiceNo))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if inv.ClientName != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Billed To: %s", *inv.ClientName))
		pdf.Ln(5)
	}
	if inv.UnitName != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Unit: %s", *inv.UnitName))
		pdf.Ln(5)
	}
	if inv.ClientGSTIN != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Client GSTIN: %s", *inv.ClientGSTIN))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Period: %02d/%d", inv.PeriodMonth, inv.PeriodYear))
	pdf.Ln(9)

	// Line item table
	pdf.SetFont("Helvetica", "B", 9)
	headers := []struct {
		label string
		width float64
	}{
		{"Service", 44},
		{"NOP", 12},
		{"Duty", 12},
		{"Rate", 20},
		{"Amount", 22},
		{"SC", 18},
		{"PF", 18},
		{"ESI", 18},
		{"LWF/Levy", 26},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 7, h.label, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, li := range inv.LineItems {
		pdf.CellFormat(44, 6, li.Service, "1", 0, "L", false, 0, "")
		pdf.CellFormat(12, 6, strconv.Itoa(li.NOP), "1", 0, "R", false, 0, "")
		pdf.CellFormat(12, 6, strconv.Itoa(li.Duty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, li.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(22, 6, li.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, li.SCAmount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, li.PFAmount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, li.ESIAmount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, li.LWFAmount.Add(li.LevyAmount).StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totalRow := func(label string, amount decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(130, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(36, 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(24, 6, amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	totalRow("Sub Total", inv.SubTotal, false)
	if inv.CGSTAmount.IsPositive() || inv.SGSTAmount.IsPositive() {
		totalRow(fmt.Sprintf("CGST %s%%", inv.CGSTPercent.String()), inv.CGSTAmount, false)
		totalRow(fmt.Sprintf("SGST %s%%", inv.SGSTPercent.String()), inv.SGSTAmount, false)
	}
	if inv.IGSTAmount.IsPositive() {
		totalRow(fmt.Sprintf("IGST %s%%", inv.IGSTPercent.String()), inv.IGSTAmount, false)
	}
	if inv.Others.IsPositive() {
		totalRow("Others", inv.Others, false)
	}
	totalRow("Grand Total", inv.GrandTotal, true)
	if inv.TDSAmount.IsPositive() {
		totalRow(fmt.Sprintf("TDS %s%%", inv.TDSPercent.String()), inv.TDSAmount, false)
		totalRow("Net Receivable", inv.NetAmount, true)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}

	return buf.Bytes(), nil
}
