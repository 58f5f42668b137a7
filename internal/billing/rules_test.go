package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRupee_HalfUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0.5", "1"},
		{"2505.5", "2506"},
		{"116.3", "116"},
		{"2340", "2340"},
		{"714.99", "715"},
		{"0.49", "0"},
	}

	for _, tt := range tests {
		assertDec(t, tt.want, RoundRupee(dec(tt.in)))
	}
}

func TestPercent_BoundaryRounding(t *testing.T) {
	t.Parallel()

	// b=100, r=0.5 must round up to 1, not truncate to 0.
	assertDec(t, "1", Percent(dec("100"), dec("0.5")))
}

func TestApplyRule_PercentageBases(t *testing.T) {
	t.Parallel()

	bases := Bases{
		Basic:    dec("15000"),
		BasicDA:  dec("18000"),
		Gross:    dec("22000"),
		SubTotal: dec("25055"),
	}
	flags := CalcFlags{PFBasis: PFBasisActual, MonthDays: 30, HeadCount: 1}

	tests := []struct {
		name string
		key  RuleKey
		rule Rule
		want string
	}{
		{"epf on basic+da", RuleEPF, Rule{Basis: BasisBasicDA, Rate: dec("13")}, "2340"},
		{"esi on gross", RuleESI, Rule{Basis: BasisGross, Rate: dec("3.25")}, "715"},
		{"bonus on basic", RuleBonus, Rule{Basis: BasisBasic, Rate: dec("8.33")}, "1250"},
		{"gratuity on basic", RuleGratuity, Rule{Basis: BasisBasic, Rate: dec("4.81")}, "722"},
		{"service charge on subtotal", RuleServiceCharge, Rule{Basis: BasisSubTotal, Rate: dec("10")}, "2506"},
		{"zero-rate holiday", RuleHoliday, Rule{Basis: BasisBasic, Rate: dec("0")}, "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ApplyRule(tt.key, tt.rule, bases, flags)
			require.NoError(t, err)
			assertDec(t, tt.want, got)
		})
	}
}

func TestApplyRule_PFBasisSelection(t *testing.T) {
	t.Parallel()

	bases := Bases{Basic: dec("2600")}
	rule := Rule{Basis: BasisBasic, Rate: dec("12")}

	// Actual days: 12% of raw basic.
	got, err := ApplyRule(RulePF, rule, bases, CalcFlags{PFBasis: PFBasisActual, MonthDays: 31, HeadCount: 1})
	require.NoError(t, err)
	assertDec(t, "312", got)

	// Fixed 26 days: basis becomes basic*26/31 before the percentage.
	got, err = ApplyRule(RulePF, rule, bases, CalcFlags{PFBasis: PFBasisFixed26, MonthDays: 31, HeadCount: 1})
	require.NoError(t, err)
	// 2600*26/31 = 2180.645..., 12% = 261.677 -> 262
	assertDec(t, "262", got)

	// Fixed-26 with no month days is an error, not a silent default.
	_, err = ApplyRule(RulePF, rule, bases, CalcFlags{PFBasis: PFBasisFixed26, HeadCount: 1})
	assert.ErrorIs(t, err, ErrInvalidMonthDays)
}

func TestApplyRule_FixedScalesWithHeadCount(t *testing.T) {
	t.Parallel()

	rule := Rule{Basis: BasisFixed, Rate: dec("25")}

	got, err := ApplyRule(RuleLWF, rule, Bases{}, CalcFlags{HeadCount: 4})
	require.NoError(t, err)
	assertDec(t, "100", got)

	_, err = ApplyRule(RuleLWF, rule, Bases{}, CalcFlags{HeadCount: 0})
	assert.ErrorIs(t, err, ErrInvalidHeadCount)
}

func TestApplyRule_RejectsNegativeRate(t *testing.T) {
	t.Parallel()

	_, err := ApplyRule(RuleEPF, Rule{Basis: BasisBasicDA, Rate: dec("-1")}, Bases{BasicDA: dec("1000")}, CalcFlags{HeadCount: 1})
	assert.ErrorIs(t, err, ErrNegativeRate)
}

func TestApplyRule_RejectsUnknownBasis(t *testing.T) {
	t.Parallel()

	_, err := ApplyRule(RuleEPF, Rule{Basis: Basis("weekly"), Rate: dec("5")}, Bases{}, CalcFlags{HeadCount: 1})
	assert.ErrorIs(t, err, ErrInvalidBasis)
}

func TestApply_AllRules(t *testing.T) {
	t.Parallel()

	rs := RuleSet{
		RuleEPF: {Basis: BasisBasicDA, Rate: dec("13")},
		RuleESI: {Basis: BasisGross, Rate: dec("3.25")},
		RuleLWF: {Basis: BasisFixed, Rate: dec("10")},
	}
	bases := Bases{BasicDA: dec("18000"), Gross: dec("22000")}

	amounts, err := Apply(rs, bases, CalcFlags{HeadCount: 2})
	require.NoError(t, err)
	require.Len(t, amounts, 3)
	assertDec(t, "2340", amounts[RuleEPF])
	assertDec(t, "715", amounts[RuleESI])
	assertDec(t, "20", amounts[RuleLWF])
}

func TestApply_FailsWholeSetOnOneBadRule(t *testing.T) {
	t.Parallel()

	rs := RuleSet{
		RuleEPF: {Basis: BasisBasicDA, Rate: dec("13")},
		RuleESI: {Basis: BasisGross, Rate: dec("-3.25")},
	}

	amounts, err := Apply(rs, Bases{BasicDA: dec("18000"), Gross: dec("22000")}, CalcFlags{HeadCount: 1})
	assert.ErrorIs(t, err, ErrNegativeRate)
	assert.Nil(t, amounts)
}

func TestDefaultRuleSet_CanonicalDefaults(t *testing.T) {
	t.Parallel()

	rs := DefaultRuleSet()

	assert.Equal(t, BasisBasicDA, rs[RuleEPF].Basis)
	assertDec(t, "13", rs[RuleEPF].Rate)
	assert.Equal(t, BasisGross, rs[RuleESI].Basis)
	assertDec(t, "3.25", rs[RuleESI].Rate)
	assert.Equal(t, BasisSubTotal, rs[RuleServiceCharge].Basis)
	assertDec(t, "10", rs[RuleServiceCharge].Rate)
	assert.Equal(t, BasisFixed, rs[RuleLWF].Basis)
	assert.Equal(t, BasisFixed, rs[RuleLevy].Basis)
}

func TestRuleSet_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	master := DefaultRuleSet()
	working := master.Clone()
	working[RuleServiceCharge] = Rule{Basis: BasisSubTotal, Rate: dec("15")}

	assertDec(t, "10", master[RuleServiceCharge].Rate)
}
