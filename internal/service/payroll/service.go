package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/employee"
	"github.com/garudasec/billing-backend-go/internal/domain/payroll"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/garudasec/billing-backend-go/internal/pkg/pdf"
	"github.com/garudasec/billing-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	pdfGen       *pdf.Generator
	transact     func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	pdfGen *pdf.Generator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		pdfGen:       pdfGen,
		transact: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Generate runs payroll for a period. Employees that already have a
// slip are skipped, so re-running the same month is a no-op for them;
// the new slips land in one transaction.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	active, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	if len(active) == 0 {
		return payroll.GeneratePayrollResponse{}, payroll.ErrNoEligibleStaff
	}

	var created []payroll.PayrollSlip
	var skipped int
	err = s.transact(ctx, func(txCtx context.Context) error {
		processed, err := s.payrollRepo.GetProcessedEmployeeIDs(txCtx, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}

		inputs := make([]billing.SlipInput, len(active))
		for i, e := range active {
			inputs[i] = billing.SlipInput{EmployeeID: e.ID, Gross: e.GrossSalary}
			if processed[e.ID] {
				skipped++
			}
		}

		slips, err := billing.GenerateSlips(inputs, req.PeriodMonth, req.PeriodYear, processed)
		if err != nil {
			return err
		}

		records := make([]payroll.PayrollSlip, len(slips))
		for i, slip := range slips {
			records[i] = payroll.PayrollSlip{
				EmployeeID:  slip.EmployeeID,
				PeriodMonth: slip.PeriodMonth,
				PeriodYear:  slip.PeriodYear,
				Status:      payroll.SlipStatusDraft,
				GrossSalary: slip.Gross,
				Basic:       slip.Basic,
				HRA:         slip.HRA,
				Allowances:  slip.Allowances,
				PF:          slip.PF,
				ProfTax:     slip.ProfTax,
				IncomeTax:   slip.IncomeTax,
				Deductions:  slip.TotalDeductions,
				NetPay:      slip.NetPay,
			}
		}

		created, err = s.payrollRepo.CreateSlips(txCtx, records)
		return err
	})
	if err != nil {
		// A concurrent run for the same period loses the insert race
		// on the unique index; that is a conflict, not a failure.
		if errors.Is(err, payroll.ErrSlipExists) {
			return payroll.GeneratePayrollResponse{}, err
		}
		return payroll.GeneratePayrollResponse{}, fmt.Errorf("%w: %w", payroll.ErrGenerationFailed, err)
	}

	slog.Info("Payroll run completed",
		"period_month", req.PeriodMonth, "period_year", req.PeriodYear,
		"generated", len(created), "skipped", skipped)

	responses := make([]payroll.SlipResponse, len(created))
	for i, slip := range created {
		responses[i] = toSlipResponse(slip)
	}

	return payroll.GeneratePayrollResponse{
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Generated:   len(created),
		Skipped:     skipped,
		Slips:       responses,
	}, nil
}

func (s *PayrollServiceImpl) GetSlip(ctx context.Context, id string) (payroll.SlipResponse, error) {
	slip, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.SlipResponse{}, err
	}
	return toSlipResponse(slip), nil
}

func (s *PayrollServiceImpl) ListSlips(ctx context.Context, filter payroll.ListSlipFilter) (payroll.ListSlipResponse, error) {
	slips, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListSlipResponse{}, err
	}

	data := make([]payroll.SlipResponse, len(slips))
	for i, slip := range slips {
		data[i] = toSlipResponse(slip)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return payroll.ListSlipResponse{
		Data:       data,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

func (s *PayrollServiceImpl) MarkSlipPaid(ctx context.Context, id string) (payroll.SlipResponse, error) {
	if err := s.payrollRepo.MarkPaid(ctx, id); err != nil {
		return payroll.SlipResponse{}, err
	}
	return s.GetSlip(ctx, id)
}

func (s *PayrollServiceImpl) DeleteSlip(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) RenderSlipPDF(ctx context.Context, id string) ([]byte, error) {
	slip, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.pdfGen.RenderPayslip(slip)
}

func toSlipResponse(s payroll.PayrollSlip) payroll.SlipResponse {
	return payroll.SlipResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeCode: s.EmployeeCode,
		EmployeeName: s.EmployeeName,
		Designation:  s.Designation,
		UnitName:     s.UnitName,
		PeriodMonth:  s.PeriodMonth,
		PeriodYear:   s.PeriodYear,
		Status:       string(s.Status),
		GrossSalary:  s.GrossSalary,
		Basic:        s.Basic,
		HRA:          s.HRA,
		Allowances:   s.Allowances,
		PF:           s.PF,
		ProfTax:      s.ProfTax,
		IncomeTax:    s.IncomeTax,
		Deductions:   s.Deductions,
		NetPay:       s.NetPay,
		PaidAt:       s.PaidAt,
	}
}
