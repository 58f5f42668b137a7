package payroll

import "context"

type PayrollRepository interface {
	// GetProcessedEmployeeIDs returns the IDs of employees that already
	// have a slip for the period.
	GetProcessedEmployeeIDs(ctx context.Context, month, year int) (map[string]bool, error)
	CreateSlips(ctx context.Context, slips []PayrollSlip) ([]PayrollSlip, error)
	GetByID(ctx context.Context, id string) (PayrollSlip, error)
	List(ctx context.Context, filter ListSlipFilter) ([]PayrollSlip, int64, error)
	MarkPaid(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
