package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineInput is one billed service line before computation, with its own
// statutory percentage snapshot taken from the resolved rate card.
type LineInput struct {
	Service   string
	NOP       int
	Duty      int
	Rate      decimal.Decimal
	MonthDays int

	SCPercent  decimal.Decimal
	PFPercent  decimal.Decimal
	ESIPercent decimal.Decimal
	LWFRate    decimal.Decimal
	LevyRate   decimal.Decimal
}

// LineItem is a fully computed invoice line. A line is either fully
// computed or not produced at all.
type LineItem struct {
	Service   string
	NOP       int
	Duty      int
	Rate      decimal.Decimal
	MonthDays int

	Amount     decimal.Decimal
	SCAmount   decimal.Decimal
	PFAmount   decimal.Decimal
	ESIAmount  decimal.Decimal
	LWFAmount  decimal.Decimal
	LevyAmount decimal.Decimal
}

// Total is the line's base amount plus its statutory amounts.
func (li LineItem) Total() decimal.Decimal {
	return li.Amount.
		Add(li.SCAmount).
		Add(li.PFAmount).
		Add(li.ESIAmount).
		Add(li.LWFAmount).
		Add(li.LevyAmount)
}

// ComputeLine prorates the monthly rate by duty days and applies the
// line's statutory snapshot. Lines with duty or month days of zero are
// rejected rather than returned with a zero amount.
func ComputeLine(in LineInput) (LineItem, error) {
	if in.Duty <= 0 || in.MonthDays <= 0 {
		return LineItem{}, fmt.Errorf("service %q duty=%d month_days=%d: %w",
			in.Service, in.Duty, in.MonthDays, ErrInvalidLineItem)
	}
	if in.NOP <= 0 {
		return LineItem{}, fmt.Errorf("service %q nop=%d: %w", in.Service, in.NOP, ErrInvalidHeadCount)
	}
	if in.Rate.IsNegative() {
		return LineItem{}, fmt.Errorf("service %q rate: %w", in.Service, ErrNegativeComponent)
	}
	for name, p := range map[string]decimal.Decimal{
		"sc": in.SCPercent, "pf": in.PFPercent, "esi": in.ESIPercent,
		"lwf": in.LWFRate, "levy": in.LevyRate,
	} {
		if p.IsNegative() {
			return LineItem{}, fmt.Errorf("service %q %s: %w", in.Service, name, ErrNegativeRate)
		}
	}

	nop := decimal.NewFromInt(int64(in.NOP))
	amount := RoundRupee(in.Rate.
		Div(decimal.NewFromInt(int64(in.MonthDays))).
		Mul(decimal.NewFromInt(int64(in.Duty))).
		Mul(nop))

	return LineItem{
		Service:   in.Service,
		NOP:       in.NOP,
		Duty:      in.Duty,
		Rate:      in.Rate,
		MonthDays: in.MonthDays,

		Amount:    amount,
		SCAmount:  Percent(amount, in.SCPercent),
		PFAmount:  Percent(amount, in.PFPercent),
		ESIAmount: Percent(amount, in.ESIPercent),
		// Fixed per-head charges scale with persons, not duty.
		LWFAmount:  in.LWFRate.Mul(nop),
		LevyAmount: in.LevyRate.Mul(nop),
	}, nil
}

// TaxRates carries the GST split as three independent 0-100
// percentages. CGST/SGST versus IGST exclusivity is the caller's
// decision, made from the client's state against the company's.
type TaxRates struct {
	CGST decimal.Decimal
	SGST decimal.Decimal
	IGST decimal.Decimal
}

// FooterTotals aggregates all lines into the bill-level figures. Tax
// amounts keep two decimal places; TDSAmount is informational and is
// not subtracted from GrandTotal.
type FooterTotals struct {
	SubTotal   decimal.Decimal
	CGSTAmount decimal.Decimal
	SGSTAmount decimal.Decimal
	IGSTAmount decimal.Decimal
	TaxTotal   decimal.Decimal
	Others     decimal.Decimal
	GrandTotal decimal.Decimal
	TDSAmount  decimal.Decimal
	NetAmount  decimal.Decimal
}

// ComputeFooter rolls the computed lines into sub-total, GST amounts,
// grand total and the informational TDS figure.
func ComputeFooter(items []LineItem, taxes TaxRates, others, tdsPercent decimal.Decimal) (FooterTotals, error) {
	for name, p := range map[string]decimal.Decimal{
		"cgst": taxes.CGST, "sgst": taxes.SGST, "igst": taxes.IGST, "tds": tdsPercent,
	} {
		if p.IsNegative() {
			return FooterTotals{}, fmt.Errorf("%s: %w", name, ErrNegativeRate)
		}
	}

	subTotal := decimal.Zero
	for _, item := range items {
		subTotal = subTotal.Add(item.Total())
	}

	cgst := RoundTax(subTotal.Mul(taxes.CGST).Div(hundred))
	sgst := RoundTax(subTotal.Mul(taxes.SGST).Div(hundred))
	igst := RoundTax(subTotal.Mul(taxes.IGST).Div(hundred))
	taxTotal := cgst.Add(sgst).Add(igst)

	return FooterTotals{
		SubTotal:   subTotal,
		CGSTAmount: cgst,
		SGSTAmount: sgst,
		IGSTAmount: igst,
		TaxTotal:   taxTotal,
		Others:     others,
		GrandTotal: subTotal.Add(taxTotal).Add(others),
		TDSAmount:  RoundTax(subTotal.Mul(tdsPercent).Div(hundred)),
		NetAmount:  subTotal.Add(taxTotal).Add(others).Sub(RoundTax(subTotal.Mul(tdsPercent).Div(hundred))),
	}, nil
}
