package payroll

import "errors"

var (
	ErrSlipNotFound     = errors.New("payroll slip not found")
	ErrSlipExists       = errors.New("payroll slip already exists for the period")
	ErrSlipAlreadyPaid  = errors.New("payroll slip already paid")
	ErrNoEligibleStaff  = errors.New("no eligible employees for the period")
	ErrPeriodOutOfRange = errors.New("payroll period out of range")
	ErrGenerationFailed = errors.New("payroll generation failed")
)
