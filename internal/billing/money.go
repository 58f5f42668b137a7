package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundRupee rounds to the nearest whole rupee, half up. All three call
// sites (bill-rate estimate, invoice, payslip) round through here so a
// bill estimate and the invoice generated from it never diverge by a
// rounding unit.
func RoundRupee(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// RoundTax keeps two decimal places. Footer tax amounts retain paise
// until final display rounding.
func RoundTax(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent applies a 0-100 percentage to a basis and rounds to the
// nearest rupee.
func Percent(basis, rate decimal.Decimal) decimal.Decimal {
	return RoundRupee(basis.Mul(rate).Div(hundred))
}
