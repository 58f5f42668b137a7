package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type SlipStatus string

const (
	SlipStatusDraft SlipStatus = "draft"
	SlipStatusPaid  SlipStatus = "paid"
)

// PayrollSlip - one employee's computed salary breakdown for a period.
// At most one slip exists per (employee, period).
type PayrollSlip struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Status      SlipStatus

	GrossSalary decimal.Decimal
	Basic       decimal.Decimal
	HRA         decimal.Decimal
	Allowances  decimal.Decimal
	PF          decimal.Decimal
	ProfTax     decimal.Decimal
	IncomeTax   decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal

	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
	Designation  *string
	UnitName     *string
}
