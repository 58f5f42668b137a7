package payroll

import (
	"time"

	"github.com/garudasec/billing-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayrollRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.PeriodMonth, r.PeriodYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period_month and period_year must form a valid period",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// GeneratePayrollResponse reports what a run produced. Employees that
// already had a slip for the period are listed as skipped, not errors.
type GeneratePayrollResponse struct {
	PeriodMonth int            `json:"period_month"`
	PeriodYear  int            `json:"period_year"`
	Generated   int            `json:"generated"`
	Skipped     int            `json:"skipped"`
	Slips       []SlipResponse `json:"slips"`
}

type SlipResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeCode *string         `json:"employee_code,omitempty"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Designation  *string         `json:"designation,omitempty"`
	UnitName     *string         `json:"unit_name,omitempty"`
	PeriodMonth  int             `json:"period_month"`
	PeriodYear   int             `json:"period_year"`
	Status       string          `json:"status"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	Basic        decimal.Decimal `json:"basic"`
	HRA          decimal.Decimal `json:"hra"`
	Allowances   decimal.Decimal `json:"allowances"`
	PF           decimal.Decimal `json:"pf"`
	ProfTax      decimal.Decimal `json:"prof_tax"`
	IncomeTax    decimal.Decimal `json:"income_tax"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetPay       decimal.Decimal `json:"net_pay"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
}

type ListSlipResponse struct {
	Data       []SlipResponse `json:"data"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

type ListSlipFilter struct {
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Status      string
	Page        int
	Limit       int
}
