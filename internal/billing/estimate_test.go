package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEstimate_EndToEnd(t *testing.T) {
	t.Parallel()

	in := EstimateInput{
		Components: EarningComponents{
			ComponentBasic: dec("15000"),
			ComponentDA:    dec("3000"),
			ComponentHRA:   dec("4000"),
		},
		Rules: RuleSet{
			RuleEPF:           {Basis: BasisBasicDA, Rate: dec("13")},
			RuleESI:           {Basis: BasisGross, Rate: dec("3.25")},
			RuleServiceCharge: {Basis: BasisSubTotal, Rate: dec("10")},
		},
		PFBasis:   PFBasisActual,
		Nos:       1,
		MonthDays: 30,
	}

	totals, err := ComputeEstimate(in)
	require.NoError(t, err)

	assertDec(t, "22000", totals.Gross)
	assertDec(t, "2340", totals.Statutory[RuleEPF])
	assertDec(t, "715", totals.Statutory[RuleESI])
	assertDec(t, "25055", totals.SubTotal)
	// Service charge on 25055 at 10% is 2505.5, half-up to 2506.
	assertDec(t, "2506", totals.ServiceCharge)
	assertDec(t, "27561", totals.PerHeadTotal)
	assertDec(t, "27561", totals.GrandTotal)
}

func TestComputeEstimate_ServiceChargeOnSubTotalNotGross(t *testing.T) {
	t.Parallel()

	in := EstimateInput{
		Components: EarningComponents{ComponentBasic: dec("1000")},
		Rules: RuleSet{
			RuleEPF:           {Basis: BasisBasicDA, Rate: dec("13")},
			RuleESI:           {Basis: BasisGross, Rate: dec("3.25")},
			RuleServiceCharge: {Basis: BasisSubTotal, Rate: dec("10")},
		},
		PFBasis:   PFBasisActual,
		Nos:       1,
		MonthDays: 30,
	}

	totals, err := ComputeEstimate(in)
	require.NoError(t, err)

	// epf=130, esi=round(32.5)=33, subtotal=1163. Service charge must be
	// round(116.3)=116, not 10% of gross (100).
	assertDec(t, "1163", totals.SubTotal)
	assertDec(t, "116", totals.ServiceCharge)
}

func TestComputeEstimate_FixedRulesAfterServiceCharge(t *testing.T) {
	t.Parallel()

	in := EstimateInput{
		Components: EarningComponents{ComponentBasic: dec("10000")},
		Rules: RuleSet{
			RuleServiceCharge: {Basis: BasisSubTotal, Rate: dec("10")},
			RuleLWF:           {Basis: BasisFixed, Rate: dec("20")},
			RuleLevy:          {Basis: BasisFixed, Rate: dec("5")},
		},
		PFBasis:   PFBasisActual,
		Nos:       3,
		MonthDays: 31,
	}

	totals, err := ComputeEstimate(in)
	require.NoError(t, err)

	// Per head: 10000 + sc 1000 + lwf 20 + levy 5. Fixed charges are per
	// head; the head count scales through the grand total.
	assertDec(t, "10000", totals.SubTotal)
	assertDec(t, "1000", totals.ServiceCharge)
	assertDec(t, "11025", totals.PerHeadTotal)
	assertDec(t, "33075", totals.GrandTotal)
}

func TestComputeEstimate_GrandTotalScalesByNos(t *testing.T) {
	t.Parallel()

	base := EstimateInput{
		Components: EarningComponents{ComponentBasic: dec("12000")},
		Rules:      RuleSet{RuleEPF: {Basis: BasisBasicDA, Rate: dec("13")}},
		PFBasis:    PFBasisActual,
		Nos:        1,
		MonthDays:  30,
	}

	one, err := ComputeEstimate(base)
	require.NoError(t, err)

	base.Nos = 5
	five, err := ComputeEstimate(base)
	require.NoError(t, err)

	assert.True(t, five.GrandTotal.Equal(one.PerHeadTotal.Mul(dec("5"))))
	assert.True(t, five.PerHeadTotal.Equal(one.PerHeadTotal))
}

func TestComputeEstimate_InvalidInputs(t *testing.T) {
	t.Parallel()

	valid := EstimateInput{
		Components: EarningComponents{ComponentBasic: dec("1000")},
		Rules:      DefaultRuleSet(),
		PFBasis:    PFBasisActual,
		Nos:        1,
		MonthDays:  30,
	}

	t.Run("zero nos", func(t *testing.T) {
		t.Parallel()
		in := valid
		in.Nos = 0
		_, err := ComputeEstimate(in)
		assert.ErrorIs(t, err, ErrInvalidHeadCount)
	})

	t.Run("zero month days", func(t *testing.T) {
		t.Parallel()
		in := valid
		in.MonthDays = 0
		_, err := ComputeEstimate(in)
		assert.ErrorIs(t, err, ErrInvalidMonthDays)
	})

	t.Run("negative component", func(t *testing.T) {
		t.Parallel()
		in := valid
		in.Components = EarningComponents{ComponentBasic: dec("-100")}
		_, err := ComputeEstimate(in)
		assert.ErrorIs(t, err, ErrNegativeComponent)
	})

	t.Run("negative rate fails whole estimate", func(t *testing.T) {
		t.Parallel()
		in := valid
		in.Rules = RuleSet{RuleEPF: {Basis: BasisBasicDA, Rate: dec("-13")}}
		totals, err := ComputeEstimate(in)
		assert.ErrorIs(t, err, ErrNegativeRate)
		assert.True(t, totals.Gross.IsZero())
	})
}

func TestComputeEstimate_PFBasisFlagFlowsThrough(t *testing.T) {
	t.Parallel()

	in := EstimateInput{
		Components: EarningComponents{ComponentBasic: dec("2600")},
		Rules:      RuleSet{RulePF: {Basis: BasisBasic, Rate: dec("12")}},
		PFBasis:    PFBasisFixed26,
		Nos:        1,
		MonthDays:  31,
	}

	totals, err := ComputeEstimate(in)
	require.NoError(t, err)
	assertDec(t, "262", totals.Statutory[RulePF])
}
