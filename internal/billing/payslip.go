package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	profTaxFlat        = decimal.NewFromInt(200)
	incomeTaxThreshold = decimal.NewFromInt(50000)
	incomeTaxRate      = decimal.RequireFromString("0.1")
	basicShare         = decimal.RequireFromString("0.5")
	hraShare           = decimal.RequireFromString("0.4")
	pfShare            = decimal.RequireFromString("0.12")
)

// SlipInput is one active employee entering a payroll run.
type SlipInput struct {
	EmployeeID string
	Gross      decimal.Decimal
}

// Slip is one generated payslip for an (employee, month).
type Slip struct {
	EmployeeID      string
	PeriodMonth     int
	PeriodYear      int
	Gross           decimal.Decimal
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	Allowances      decimal.Decimal
	PF              decimal.Decimal
	ProfTax         decimal.Decimal
	IncomeTax       decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// GenerateSlips derives a slip per employee not yet processed for the
// month. Employees present in processed are skipped, so re-running a
// month produces no duplicates; only newly created slips are returned.
func GenerateSlips(inputs []SlipInput, month, year int, processed map[string]bool) ([]Slip, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, fmt.Errorf("period %d-%d: %w", year, month, ErrInvalidPeriod)
	}

	slips := make([]Slip, 0, len(inputs))
	for _, in := range inputs {
		if processed[in.EmployeeID] {
			continue
		}
		if in.Gross.IsNegative() {
			return nil, fmt.Errorf("employee %s gross: %w", in.EmployeeID, ErrNegativeComponent)
		}

		basic := RoundRupee(in.Gross.Mul(basicShare))
		hra := RoundRupee(basic.Mul(hraShare))
		allowances := in.Gross.Sub(basic).Sub(hra)
		pf := RoundRupee(basic.Mul(pfShare))

		incomeTax := decimal.Zero
		if in.Gross.GreaterThan(incomeTaxThreshold) {
			incomeTax = RoundRupee(in.Gross.Sub(incomeTaxThreshold).Mul(incomeTaxRate))
		}

		deductions := pf.Add(profTaxFlat).Add(incomeTax)

		slips = append(slips, Slip{
			EmployeeID:      in.EmployeeID,
			PeriodMonth:     month,
			PeriodYear:      year,
			Gross:           in.Gross,
			Basic:           basic,
			HRA:             hra,
			Allowances:      allowances,
			PF:              pf,
			ProfTax:         profTaxFlat,
			IncomeTax:       incomeTax,
			TotalDeductions: deductions,
			NetPay:          in.Gross.Sub(deductions),
		})
	}

	return slips, nil
}
