package billrate

import (
	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EstimateRequest recomputes totals from form state. Components and
// rules come either from a resolved rate card or from manual entry.
type EstimateRequest struct {
	ClientID     string                                   `json:"client_id"`
	UnitID       *string                                  `json:"unit_id,omitempty"`
	RateRecordID *string                                  `json:"rate_record_id,omitempty"`
	Designation  string                                   `json:"designation"`
	Nos          int                                      `json:"nos"`
	MonthDays    int                                      `json:"month_days"`
	Components   map[billing.ComponentKey]decimal.Decimal `json:"components"`
	Rules        map[billing.RuleKey]RuleInput            `json:"rules"`
	PFBasis      billing.PFBasis                          `json:"pf_basis"`
}

type RuleInput struct {
	Basis billing.Basis   `json:"basis"`
	Rate  decimal.Decimal `json:"rate"`
}

func (r *EstimateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}
	if r.Nos <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "nos",
			Message: "nos must be greater than zero",
		})
	}
	if r.MonthDays <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "month_days",
			Message: "month_days must be greater than zero",
		})
	}
	for key, amount := range r.Components {
		if !validator.IsNonNegativeAmount(amount) {
			errs = append(errs, validator.ValidationError{
				Field:   "components." + string(key),
				Message: "amount must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RuleSet converts the request rules into the engine's form.
func (r *EstimateRequest) RuleSet() billing.RuleSet {
	rs := make(billing.RuleSet, len(r.Rules))
	for key, rule := range r.Rules {
		rs[key] = billing.Rule{Basis: rule.Basis, Rate: rule.Rate}
	}
	return rs
}

type EstimateResponse struct {
	ID           string                                   `json:"id,omitempty"`
	ClientID     string                                   `json:"client_id"`
	ClientName   *string                                  `json:"client_name,omitempty"`
	UnitID       *string                                  `json:"unit_id,omitempty"`
	UnitName     *string                                  `json:"unit_name,omitempty"`
	RateRecordID *string                                  `json:"rate_record_id,omitempty"`
	Designation  string                                   `json:"designation"`
	Nos          int                                      `json:"nos"`
	MonthDays    int                                      `json:"month_days"`
	Components   map[billing.ComponentKey]decimal.Decimal `json:"components"`
	Rules        map[billing.RuleKey]RuleInput            `json:"rules"`
	PFBasis      billing.PFBasis                          `json:"pf_basis"`

	Gross         decimal.Decimal                     `json:"gross"`
	Statutory     map[billing.RuleKey]decimal.Decimal `json:"statutory"`
	SubTotal      decimal.Decimal                     `json:"sub_total"`
	ServiceCharge decimal.Decimal                     `json:"service_charge"`
	PerHeadTotal  decimal.Decimal                     `json:"per_head_total"`
	GrandTotal    decimal.Decimal                     `json:"grand_total"`
}
