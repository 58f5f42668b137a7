package payroll

import (
	"context"
)

// PayrollService defines business logic for monthly payroll runs.
type PayrollService interface {
	// Generate creates slips for every active employee that does not
	// already have one for the period. The run is atomic: either all
	// new slips land or none do.
	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetSlip(ctx context.Context, id string) (SlipResponse, error)
	ListSlips(ctx context.Context, filter ListSlipFilter) (ListSlipResponse, error)
	MarkSlipPaid(ctx context.Context, id string) (SlipResponse, error)
	DeleteSlip(ctx context.Context, id string) error
	// RenderSlipPDF renders a stored slip as a PDF document.
	RenderSlipPDF(ctx context.Context, id string) ([]byte, error)
}
