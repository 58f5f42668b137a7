package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RuleKey identifies one statutory rule.
type RuleKey string

const (
	RuleEPF           RuleKey = "epf"
	RuleESI           RuleKey = "esi"
	RuleBonus         RuleKey = "bonus"
	RuleLeave         RuleKey = "leave"
	RuleGratuity      RuleKey = "gratuity"
	RuleHoliday       RuleKey = "holiday"
	RuleServiceCharge RuleKey = "service_charge"
	RulePF            RuleKey = "pf"
	RuleESIC          RuleKey = "esic"
	RuleLWF           RuleKey = "lwf"
	RuleLevy          RuleKey = "levy"
)

// Basis selects what a rule's rate is applied to.
type Basis string

const (
	BasisBasic    Basis = "basic"
	BasisBasicDA  Basis = "basic_da"
	BasisGross    Basis = "gross"
	BasisSubTotal Basis = "subtotal"
	BasisFixed    Basis = "fixed"
)

// Rule is one statutory percentage or fixed per-head charge. Rate is a
// plain 0-100 number for percentage bases and a rupee amount for
// BasisFixed.
type Rule struct {
	Basis Basis           `json:"basis"`
	Rate  decimal.Decimal `json:"rate"`
}

// RuleSet maps rule name to its basis and rate.
type RuleSet map[RuleKey]Rule

// Clone returns an independent copy of the rule set.
func (rs RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

// DefaultRuleSet returns the canonical statutory catalogue with its
// typical defaults.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		RuleEPF:           {Basis: BasisBasicDA, Rate: decimal.RequireFromString("13")},
		RuleESI:           {Basis: BasisGross, Rate: decimal.RequireFromString("3.25")},
		RuleBonus:         {Basis: BasisBasic, Rate: decimal.RequireFromString("8.33")},
		RuleLeave:         {Basis: BasisBasic, Rate: decimal.RequireFromString("5")},
		RuleGratuity:      {Basis: BasisBasic, Rate: decimal.RequireFromString("4.81")},
		RuleHoliday:       {Basis: BasisBasic, Rate: decimal.Zero},
		RuleServiceCharge: {Basis: BasisSubTotal, Rate: decimal.RequireFromString("10")},
		RulePF:            {Basis: BasisBasic, Rate: decimal.RequireFromString("12")},
		RuleESIC:          {Basis: BasisGross, Rate: decimal.RequireFromString("0.75")},
		RuleLWF:           {Basis: BasisFixed, Rate: decimal.Zero},
		RuleLevy:          {Basis: BasisFixed, Rate: decimal.Zero},
	}
}

// PFBasis selects how the PF percentage basis is derived.
type PFBasis string

const (
	PFBasisActual  PFBasis = "actual"
	PFBasisFixed26 PFBasis = "fixed_26"
)

// RoomRentType selects how room rent is charged on a rate card.
type RoomRentType string

const (
	RoomRentFixed   RoomRentType = "fixed"
	RoomRentProRata RoomRentType = "pro_rata"
)

// Bases carries the basis values a rule set is applied against.
// SubTotal is only meaningful once earnings and the employer-side
// statutory additions have been accumulated.
type Bases struct {
	Basic    decimal.Decimal
	BasicDA  decimal.Decimal
	Gross    decimal.Decimal
	SubTotal decimal.Decimal
}

// CalcFlags carries the calculation-rule flags that live on the rate
// record, not on the calculator.
type CalcFlags struct {
	PFBasis   PFBasis
	MonthDays int
	HeadCount int
}

// RuleAmounts holds the computed amount per rule.
type RuleAmounts map[RuleKey]decimal.Decimal

// ApplyRule computes one rule's amount. Percentage rules round half-up
// to the whole rupee; fixed rules scale with head count, not with duty.
func ApplyRule(key RuleKey, rule Rule, b Bases, flags CalcFlags) (decimal.Decimal, error) {
	if rule.Rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("rule %q: %w", key, ErrNegativeRate)
	}

	if rule.Basis == BasisFixed {
		if flags.HeadCount <= 0 {
			return decimal.Zero, fmt.Errorf("rule %q: %w", key, ErrInvalidHeadCount)
		}
		return rule.Rate.Mul(decimal.NewFromInt(int64(flags.HeadCount))), nil
	}

	basis, err := basisValue(key, rule.Basis, b, flags)
	if err != nil {
		return decimal.Zero, err
	}

	return Percent(basis, rule.Rate), nil
}

// Apply computes every rule in the set against the given bases.
func Apply(rs RuleSet, b Bases, flags CalcFlags) (RuleAmounts, error) {
	amounts := make(RuleAmounts, len(rs))
	for key, rule := range rs {
		amount, err := ApplyRule(key, rule, b, flags)
		if err != nil {
			return nil, err
		}
		amounts[key] = amount
	}
	return amounts, nil
}

func basisValue(key RuleKey, basis Basis, b Bases, flags CalcFlags) (decimal.Decimal, error) {
	var v decimal.Decimal
	switch basis {
	case BasisBasic:
		v = b.Basic
		// PF on a fixed 26-day month: the basis is basic scaled by
		// 26/monthDays rather than raw basic.
		if key == RulePF && flags.PFBasis == PFBasisFixed26 {
			if flags.MonthDays <= 0 {
				return decimal.Zero, fmt.Errorf("rule %q: %w", key, ErrInvalidMonthDays)
			}
			v = v.Mul(decimal.NewFromInt(26)).Div(decimal.NewFromInt(int64(flags.MonthDays)))
		}
	case BasisBasicDA:
		v = b.BasicDA
	case BasisGross:
		v = b.Gross
	case BasisSubTotal:
		v = b.SubTotal
	default:
		return decimal.Zero, fmt.Errorf("rule %q basis %q: %w", key, basis, ErrInvalidBasis)
	}

	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("rule %q basis %q is negative: %w", key, basis, ErrNegativeComponent)
	}

	return v, nil
}
