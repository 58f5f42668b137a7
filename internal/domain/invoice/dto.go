package invoice

import (
	"strconv"

	"github.com/garudasec/billing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LineItemRequest struct {
	Service    string          `json:"service"`
	NOP        int             `json:"nop"`
	Duty       int             `json:"duty"`
	Rate       decimal.Decimal `json:"rate"`
	MonthDays  int             `json:"month_days"`
	SCPercent  decimal.Decimal `json:"sc_percent"`
	PFPercent  decimal.Decimal `json:"pf_percent"`
	ESIPercent decimal.Decimal `json:"esi_percent"`
	LWFRate    decimal.Decimal `json:"lwf_rate"`
	LevyRate   decimal.Decimal `json:"levy_rate"`
}

type CreateInvoiceRequest struct {
	ClientID    string            `json:"client_id"`
	UnitID      *string           `json:"unit_id,omitempty"`
	PeriodMonth int               `json:"period_month"`
	PeriodYear  int               `json:"period_year"`
	LineItems   []LineItemRequest `json:"line_items"`
	CGSTPercent decimal.Decimal   `json:"cgst_percent"`
	SGSTPercent decimal.Decimal   `json:"sgst_percent"`
	IGSTPercent decimal.Decimal   `json:"igst_percent"`
	TDSPercent  decimal.Decimal   `json:"tds_percent"`
	Others      decimal.Decimal   `json:"others"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if !validator.IsValidMonth(r.PeriodMonth, r.PeriodYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period_month and period_year must form a valid period",
		})
	}
	if len(r.LineItems) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "line_items",
			Message: "at least one line item is required",
		})
	}
	for i, li := range r.LineItems {
		idx := strconv.Itoa(i)
		if validator.IsEmpty(li.Service) {
			errs = append(errs, validator.ValidationError{
				Field:   "line_items[" + idx + "].service",
				Message: "service is required",
			})
		}
		if li.Duty <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "line_items[" + idx + "].duty",
				Message: "duty must be greater than zero",
			})
		}
		if li.MonthDays <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "line_items[" + idx + "].month_days",
				Message: "month_days must be greater than zero",
			})
		}
	}
	for field, p := range map[string]decimal.Decimal{
		"cgst_percent": r.CGSTPercent,
		"sgst_percent": r.SGSTPercent,
		"igst_percent": r.IGSTPercent,
		"tds_percent":  r.TDSPercent,
	} {
		if !validator.IsValidPercent(p) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a percentage between 0 and 100",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LineItemResponse struct {
	ID         string          `json:"id"`
	Service    string          `json:"service"`
	NOP        int             `json:"nop"`
	Duty       int             `json:"duty"`
	Rate       decimal.Decimal `json:"rate"`
	MonthDays  int             `json:"month_days"`
	Amount     decimal.Decimal `json:"amount"`
	SCAmount   decimal.Decimal `json:"sc_amount"`
	PFAmount   decimal.Decimal `json:"pf_amount"`
	ESIAmount  decimal.Decimal `json:"esi_amount"`
	LWFAmount  decimal.Decimal `json:"lwf_amount"`
	LevyAmount decimal.Decimal `json:"levy_amount"`
}

type InvoiceResponse struct {
	ID          string             `json:"id"`
	InvoiceNo   string             `json:"invoice_no"`
	ClientID    string             `json:"client_id"`
	ClientName  *string            `json:"client_name,omitempty"`
	UnitID      *string            `json:"unit_id,omitempty"`
	UnitName    *string            `json:"unit_name,omitempty"`
	PeriodMonth int                `json:"period_month"`
	PeriodYear  int                `json:"period_year"`
	Status      string             `json:"status"`
	LineItems   []LineItemResponse `json:"line_items"`

	CGSTPercent decimal.Decimal `json:"cgst_percent"`
	SGSTPercent decimal.Decimal `json:"sgst_percent"`
	IGSTPercent decimal.Decimal `json:"igst_percent"`
	TDSPercent  decimal.Decimal `json:"tds_percent"`
	Others      decimal.Decimal `json:"others"`

	SubTotal   decimal.Decimal `json:"sub_total"`
	CGSTAmount decimal.Decimal `json:"cgst_amount"`
	SGSTAmount decimal.Decimal `json:"sgst_amount"`
	IGSTAmount decimal.Decimal `json:"igst_amount"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	TDSAmount  decimal.Decimal `json:"tds_amount"`
	NetAmount  decimal.Decimal `json:"net_amount"`
}

type ListInvoiceResponse struct {
	Data       []InvoiceResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type ListInvoiceFilter struct {
	ClientID    string
	PeriodMonth int
	PeriodYear  int
	Status      string
	Page        int
	Limit       int
}
