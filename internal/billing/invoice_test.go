package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLine_ProratesByDuty(t *testing.T) {
	t.Parallel()

	item, err := ComputeLine(LineInput{
		Service:    "Security Guard",
		NOP:        2,
		Duty:       15,
		Rate:       dec("12000"),
		MonthDays:  30,
		SCPercent:  dec("10"),
		PFPercent:  dec("12"),
		ESIPercent: dec("3.25"),
		LWFRate:    dec("20"),
		LevyRate:   dec("5"),
	})
	require.NoError(t, err)

	// 12000/30 * 15 * 2 = 12000
	assertDec(t, "12000", item.Amount)
	assertDec(t, "1200", item.SCAmount)
	assertDec(t, "1440", item.PFAmount)
	assertDec(t, "390", item.ESIAmount)
	// Fixed charges scale with persons, not duty.
	assertDec(t, "40", item.LWFAmount)
	assertDec(t, "10", item.LevyAmount)
	assertDec(t, "15080", item.Total())
}

func TestComputeLine_RoundsAmount(t *testing.T) {
	t.Parallel()

	item, err := ComputeLine(LineInput{
		Service:   "Supervisor",
		NOP:       1,
		Duty:      7,
		Rate:      dec("10000"),
		MonthDays: 31,
	})
	require.NoError(t, err)

	// 10000/31*7 = 2258.06..., half-up to 2258
	assertDec(t, "2258", item.Amount)
}

func TestComputeLine_RejectsZeroDuty(t *testing.T) {
	t.Parallel()

	_, err := ComputeLine(LineInput{
		Service:   "Security Guard",
		NOP:       1,
		Duty:      0,
		Rate:      dec("12000"),
		MonthDays: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestComputeLine_RejectsZeroMonthDays(t *testing.T) {
	t.Parallel()

	_, err := ComputeLine(LineInput{
		Service:   "Security Guard",
		NOP:       1,
		Duty:      30,
		Rate:      dec("12000"),
		MonthDays: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestComputeLine_RejectsNegativeInputs(t *testing.T) {
	t.Parallel()

	_, err := ComputeLine(LineInput{
		Service: "Guard", NOP: 1, Duty: 30, Rate: dec("-1"), MonthDays: 30,
	})
	assert.ErrorIs(t, err, ErrNegativeComponent)

	_, err = ComputeLine(LineInput{
		Service: "Guard", NOP: 1, Duty: 30, Rate: dec("100"), MonthDays: 30,
		SCPercent: dec("-10"),
	})
	assert.ErrorIs(t, err, ErrNegativeRate)
}

func footerItems(t *testing.T) []LineItem {
	t.Helper()

	a, err := ComputeLine(LineInput{
		Service: "Security Guard", NOP: 4, Duty: 30, Rate: dec("15000"), MonthDays: 30,
		SCPercent: dec("10"), PFPercent: dec("12"), ESIPercent: dec("3.25"),
		LWFRate: dec("20"), LevyRate: dec("5"),
	})
	require.NoError(t, err)

	b, err := ComputeLine(LineInput{
		Service: "Supervisor", NOP: 1, Duty: 30, Rate: dec("22000"), MonthDays: 30,
		SCPercent: dec("10"),
	})
	require.NoError(t, err)

	return []LineItem{a, b}
}

func TestComputeFooter_SubTotalIncludesStatutory(t *testing.T) {
	t.Parallel()

	items := footerItems(t)

	// Line A: amount 60000, sc 6000, pf 7200, esi 1950, lwf 80, levy 20 = 75250
	// Line B: amount 22000, sc 2200 = 24200
	footer, err := ComputeFooter(items, TaxRates{}, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assertDec(t, "99450", footer.SubTotal)
	assertDec(t, "99450", footer.GrandTotal)
	assertDec(t, "0", footer.TaxTotal)
}

func TestComputeFooter_IntrastateGSTSplit(t *testing.T) {
	t.Parallel()

	items := footerItems(t)

	footer, err := ComputeFooter(items, TaxRates{CGST: dec("9"), SGST: dec("9")}, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assertDec(t, "8950.5", footer.CGSTAmount)
	assertDec(t, "8950.5", footer.SGSTAmount)
	assertDec(t, "0", footer.IGSTAmount)
	assertDec(t, "17901", footer.TaxTotal)
	assertDec(t, "117351", footer.GrandTotal)
}

func TestComputeFooter_InterstateIGST(t *testing.T) {
	t.Parallel()

	items := footerItems(t)

	footer, err := ComputeFooter(items, TaxRates{IGST: dec("18")}, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assertDec(t, "0", footer.CGSTAmount)
	assertDec(t, "0", footer.SGSTAmount)
	assertDec(t, "17901", footer.IGSTAmount)
	// Three independent percentages; the engine does not enforce the
	// split, so interstate and intrastate totals agree here.
	assertDec(t, "117351", footer.GrandTotal)
}

func TestComputeFooter_TDSInformationalOnly(t *testing.T) {
	t.Parallel()

	items := footerItems(t)

	footer, err := ComputeFooter(items, TaxRates{IGST: dec("18")}, dec("549"), dec("2"))
	require.NoError(t, err)

	assertDec(t, "1989", footer.TDSAmount)
	// Others is a flat adjustment on top; TDS never reduces the grand total.
	assertDec(t, "117900", footer.GrandTotal)
	assertDec(t, "115911", footer.NetAmount)
}

func TestComputeFooter_EmptyInvoice(t *testing.T) {
	t.Parallel()

	footer, err := ComputeFooter(nil, TaxRates{CGST: dec("9"), SGST: dec("9")}, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assertDec(t, "0", footer.SubTotal)
	assertDec(t, "0", footer.GrandTotal)
}

func TestComputeFooter_RejectsNegativeRates(t *testing.T) {
	t.Parallel()

	_, err := ComputeFooter(nil, TaxRates{CGST: dec("-9")}, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrNegativeRate)

	_, err = ComputeFooter(nil, TaxRates{}, decimal.Zero, dec("-2"))
	assert.ErrorIs(t, err, ErrNegativeRate)
}
