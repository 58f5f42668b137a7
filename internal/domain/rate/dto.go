package rate

import (
	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// RuleRequest mirrors billing.Rule for request payloads.
type RuleRequest struct {
	Basis billing.Basis   `json:"basis"`
	Rate  decimal.Decimal `json:"rate"`
}

type CreateRateRequest struct {
	ClientID     string                                   `json:"client_id"`
	UnitID       *string                                  `json:"unit_id,omitempty"`
	Designation  string                                   `json:"designation"`
	Components   map[billing.ComponentKey]decimal.Decimal `json:"components"`
	Rules        map[billing.RuleKey]RuleRequest          `json:"rules"`
	PFBasis      billing.PFBasis                          `json:"pf_basis"`
	RoomRentType billing.RoomRentType                     `json:"room_rent_type"`
}

func (r *CreateRateRequest) Validate() error {
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
	if r.PFBasis != "" && r.PFBasis != billing.PFBasisActual && r.PFBasis != billing.PFBasisFixed26 {
		errs = append(errs, validator.ValidationError{
			Field:   "pf_basis",
			Message: "pf_basis must be actual or fixed_26",
		})
	}
	if r.RoomRentType != "" && r.RoomRentType != billing.RoomRentFixed && r.RoomRentType != billing.RoomRentProRata {
		errs = append(errs, validator.ValidationError{
			Field:   "room_rent_type",
			Message: "room_rent_type must be fixed or pro_rata",
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
	errs = appendRuleErrors(errs, r.Rules)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RuleSet converts the request rules into the engine's form.
func (r *CreateRateRequest) RuleSet() billing.RuleSet {
	rs := make(billing.RuleSet, len(r.Rules))
	for key, rule := range r.Rules {
		rs[key] = billing.Rule{Basis: rule.Basis, Rate: rule.Rate}
	}
	return rs
}

type UpdateRateRequest struct {
	ID           string                                   `json:"id"`
	Components   map[billing.ComponentKey]decimal.Decimal `json:"components,omitempty"`
	Rules        map[billing.RuleKey]RuleRequest          `json:"rules,omitempty"`
	PFBasis      *billing.PFBasis                         `json:"pf_basis,omitempty"`
	RoomRentType *billing.RoomRentType                    `json:"room_rent_type,omitempty"`
	IsActive     *bool                                    `json:"is_active,omitempty"`
}

func (r *UpdateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
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
	errs = appendRuleErrors(errs, r.Rules)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// appendRuleErrors applies the per-rule checks shared by create and
// update: percent bases stay within 0-100, fixed amounts stay
// non-negative.
func appendRuleErrors(errs validator.ValidationErrors, rules map[billing.RuleKey]RuleRequest) validator.ValidationErrors {
	for key, rule := range rules {
		if rule.Basis != billing.BasisFixed && !validator.IsValidPercent(rule.Rate) {
			errs = append(errs, validator.ValidationError{
				Field:   "rules." + string(key),
				Message: "rate must be a percentage between 0 and 100",
			})
		}
		if rule.Basis == billing.BasisFixed && !validator.IsNonNegativeAmount(rule.Rate) {
			errs = append(errs, validator.ValidationError{
				Field:   "rules." + string(key),
				Message: "fixed amount must not be negative",
			})
		}
	}
	return errs
}

type RateResponse struct {
	ID           string                                   `json:"id"`
	ClientID     string                                   `json:"client_id"`
	ClientName   *string                                  `json:"client_name,omitempty"`
	UnitID       *string                                  `json:"unit_id,omitempty"`
	UnitName     *string                                  `json:"unit_name,omitempty"`
	Designation  string                                   `json:"designation"`
	Components   map[billing.ComponentKey]decimal.Decimal `json:"components"`
	Rules        map[billing.RuleKey]RuleResponse         `json:"rules"`
	PFBasis      billing.PFBasis                          `json:"pf_basis"`
	RoomRentType billing.RoomRentType                     `json:"room_rent_type"`
	IsActive     bool                                     `json:"is_active"`
}

type RuleResponse struct {
	Basis billing.Basis   `json:"basis"`
	Rate  decimal.Decimal `json:"rate"`
}

// ResolveResponse carries the resolved rate card plus the conflict flag
// surfaced when the uniqueness invariant was violated in stored data.
type ResolveResponse struct {
	Rate     RateResponse `json:"rate"`
	Conflict bool         `json:"conflict"`
}
