package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// additionOrder fixes the accumulation order of the statutory additions
// that feed the sub-total. Service charge is deliberately absent: it is
// computed on the finished sub-total, and the fixed per-head rules are
// added after it.
var additionOrder = []RuleKey{
	RuleEPF, RuleESI, RuleBonus, RuleLeave, RuleGratuity, RuleHoliday,
	RulePF, RuleESIC,
}

var fixedOrder = []RuleKey{RuleLWF, RuleLevy}

// EstimateInput is one bill-rate computation: the resolved (or manually
// entered) components and rules for a head count over a bill period.
type EstimateInput struct {
	Components EarningComponents
	Rules      RuleSet
	PFBasis    PFBasis
	Nos        int
	MonthDays  int
}

// Totals is the derived snapshot of an estimate. All figures except
// GrandTotal are per head; GrandTotal is PerHeadTotal scaled by Nos,
// which also scales the fixed per-head rules.
type Totals struct {
	Gross         decimal.Decimal
	Statutory     RuleAmounts
	SubTotal      decimal.Decimal
	ServiceCharge decimal.Decimal
	PerHeadTotal  decimal.Decimal
	GrandTotal    decimal.Decimal
}

// ComputeEstimate derives the totals snapshot for a bill-rate estimate.
// Either the whole snapshot is produced or an error is returned; totals
// are never partially applied.
func ComputeEstimate(in EstimateInput) (Totals, error) {
	if in.Nos <= 0 {
		return Totals{}, fmt.Errorf("nos %d: %w", in.Nos, ErrInvalidHeadCount)
	}
	if in.MonthDays <= 0 {
		return Totals{}, fmt.Errorf("month days %d: %w", in.MonthDays, ErrInvalidMonthDays)
	}
	if err := in.Components.Validate(CatalogueBillRate); err != nil {
		return Totals{}, err
	}

	gross := Aggregate(in.Components)
	bases := Bases{
		Basic:   in.Components.Get(ComponentBasic),
		BasicDA: in.Components.BasicDA(),
		Gross:   gross,
	}
	flags := CalcFlags{PFBasis: in.PFBasis, MonthDays: in.MonthDays, HeadCount: 1}

	statutory := make(RuleAmounts, len(in.Rules))

	// Earnings first, then the statutory additions in canonical order.
	subTotal := gross
	for _, key := range additionOrder {
		rule, ok := in.Rules[key]
		if !ok {
			continue
		}
		amount, err := ApplyRule(key, rule, bases, flags)
		if err != nil {
			return Totals{}, err
		}
		statutory[key] = amount
		subTotal = subTotal.Add(amount)
	}

	// Service charge is computed on the finished sub-total, which
	// already carries the other statutory additions.
	bases.SubTotal = subTotal
	serviceCharge := decimal.Zero
	if rule, ok := in.Rules[RuleServiceCharge]; ok {
		amount, err := ApplyRule(RuleServiceCharge, rule, bases, flags)
		if err != nil {
			return Totals{}, err
		}
		statutory[RuleServiceCharge] = amount
		serviceCharge = amount
	}

	perHead := subTotal.Add(serviceCharge)
	for _, key := range fixedOrder {
		rule, ok := in.Rules[key]
		if !ok {
			continue
		}
		amount, err := ApplyRule(key, rule, bases, flags)
		if err != nil {
			return Totals{}, err
		}
		statutory[key] = amount
		perHead = perHead.Add(amount)
	}

	return Totals{
		Gross:         gross,
		Statutory:     statutory,
		SubTotal:      subTotal,
		ServiceCharge: serviceCharge,
		PerHeadTotal:  perHead,
		GrandTotal:    perHead.Mul(decimal.NewFromInt(int64(in.Nos))),
	}, nil
}
