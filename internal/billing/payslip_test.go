package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlips_DerivesAllFields(t *testing.T) {
	t.Parallel()

	slips, err := GenerateSlips([]SlipInput{{EmployeeID: "emp-1", Gross: dec("60000")}}, 3, 2025, nil)
	require.NoError(t, err)
	require.Len(t, slips, 1)

	s := slips[0]
	assert.Equal(t, "emp-1", s.EmployeeID)
	assert.Equal(t, 3, s.PeriodMonth)
	assert.Equal(t, 2025, s.PeriodYear)
	assertDec(t, "60000", s.Gross)
	assertDec(t, "30000", s.Basic)
	assertDec(t, "12000", s.HRA)
	assertDec(t, "18000", s.Allowances)
	assertDec(t, "3600", s.PF)
	assertDec(t, "200", s.ProfTax)
	// 10% of the 10000 above the 50000 threshold.
	assertDec(t, "1000", s.IncomeTax)
	assertDec(t, "4800", s.TotalDeductions)
	assertDec(t, "55200", s.NetPay)
}

func TestGenerateSlips_NoIncomeTaxAtOrBelowThreshold(t *testing.T) {
	t.Parallel()

	slips, err := GenerateSlips([]SlipInput{{EmployeeID: "emp-1", Gross: dec("50000")}}, 1, 2025, nil)
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assertDec(t, "0", slips[0].IncomeTax)
}

func TestGenerateSlips_SkipsAlreadyProcessed(t *testing.T) {
	t.Parallel()

	inputs := []SlipInput{
		{EmployeeID: "emp-1", Gross: dec("30000")},
		{EmployeeID: "emp-2", Gross: dec("45000")},
	}
	processed := map[string]bool{"emp-1": true}

	slips, err := GenerateSlips(inputs, 6, 2025, processed)
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assert.Equal(t, "emp-2", slips[0].EmployeeID)
}

func TestGenerateSlips_SecondRunProducesNothing(t *testing.T) {
	t.Parallel()

	inputs := []SlipInput{
		{EmployeeID: "emp-1", Gross: dec("30000")},
		{EmployeeID: "emp-2", Gross: dec("45000")},
	}

	first, err := GenerateSlips(inputs, 6, 2025, nil)
	require.NoError(t, err)
	require.Len(t, first, 2)

	processed := make(map[string]bool, len(first))
	for _, s := range first {
		processed[s.EmployeeID] = true
	}

	second, err := GenerateSlips(inputs, 6, 2025, processed)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestGenerateSlips_RoundsOddGross(t *testing.T) {
	t.Parallel()

	slips, err := GenerateSlips([]SlipInput{{EmployeeID: "emp-1", Gross: dec("33333")}}, 2, 2025, nil)
	require.NoError(t, err)
	require.Len(t, slips, 1)

	s := slips[0]
	// basic = round(16666.5) = 16667 (half up), hra = round(6666.8) = 6667
	assertDec(t, "16667", s.Basic)
	assertDec(t, "6667", s.HRA)
	assertDec(t, "9999", s.Allowances)
	assertDec(t, "2000", s.PF)
	// gross - basic - hra stays exact: totals reconcile to the rupee
	assert.True(t, s.Basic.Add(s.HRA).Add(s.Allowances).Equal(s.Gross))
}

func TestGenerateSlips_InvalidPeriod(t *testing.T) {
	t.Parallel()

	_, err := GenerateSlips(nil, 13, 2025, nil)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = GenerateSlips(nil, 0, 2025, nil)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGenerateSlips_RejectsNegativeGross(t *testing.T) {
	t.Parallel()

	_, err := GenerateSlips([]SlipInput{{EmployeeID: "emp-1", Gross: dec("-1")}}, 1, 2025, nil)
	assert.ErrorIs(t, err, ErrNegativeComponent)
}
