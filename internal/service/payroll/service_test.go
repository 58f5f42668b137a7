package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garudasec/billing-backend-go/internal/domain/employee"
	"github.com/garudasec/billing-backend-go/internal/domain/payroll"
)

type stubPayrollRepo struct {
	processed map[string]bool
	createErr error
	created   []payroll.PayrollSlip
}

func (s *stubPayrollRepo) GetProcessedEmployeeIDs(ctx context.Context, month, year int) (map[string]bool, error) {
	if s.processed == nil {
		return map[string]bool{}, nil
	}
	return s.processed, nil
}

func (s *stubPayrollRepo) CreateSlips(ctx context.Context, slips []payroll.PayrollSlip) ([]payroll.PayrollSlip, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = slips
	return slips, nil
}

func (s *stubPayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollSlip, error) {
	return payroll.PayrollSlip{}, payroll.ErrSlipNotFound
}

func (s *stubPayrollRepo) List(ctx context.Context, filter payroll.ListSlipFilter) ([]payroll.PayrollSlip, int64, error) {
	return nil, 0, nil
}

func (s *stubPayrollRepo) MarkPaid(ctx context.Context, id string) error { return nil }

func (s *stubPayrollRepo) Delete(ctx context.Context, id string) error { return nil }

type stubEmployeeRepo struct {
	active []employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.active, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService(payrollRepo *stubPayrollRepo, employeeRepo *stubEmployeeRepo) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		transact: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func activeEmployee(id string, gross int64) employee.Employee {
	return employee.Employee{
		ID:          id,
		Status:      employee.EmployeeStatusActive,
		GrossSalary: decimal.NewFromInt(gross),
	}
}

func TestGenerate_SkipsAlreadyProcessedEmployees(t *testing.T) {
	t.Parallel()

	payrollRepo := &stubPayrollRepo{processed: map[string]bool{"emp-1": true}}
	employeeRepo := &stubEmployeeRepo{active: []employee.Employee{
		activeEmployee("emp-1", 20000),
		activeEmployee("emp-2", 18000),
	}}
	svc := newTestService(payrollRepo, employeeRepo)

	resp, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		PeriodMonth: 6,
		PeriodYear:  2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Generated)
	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, payrollRepo.created, 1)
	assert.Equal(t, "emp-2", payrollRepo.created[0].EmployeeID)
	assert.Equal(t, payroll.SlipStatusDraft, payrollRepo.created[0].Status)
}

func TestGenerate_ConcurrentRunForSamePeriodConflicts(t *testing.T) {
	t.Parallel()

	// Two runs for one month can both read an empty processed set; the
	// loser of the insert race must come back as a conflict, not a
	// generic generation failure.
	payrollRepo := &stubPayrollRepo{createErr: payroll.ErrSlipExists}
	employeeRepo := &stubEmployeeRepo{active: []employee.Employee{
		activeEmployee("emp-1", 20000),
	}}
	svc := newTestService(payrollRepo, employeeRepo)

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		PeriodMonth: 6,
		PeriodYear:  2025,
	})
	assert.ErrorIs(t, err, payroll.ErrSlipExists)
	assert.NotErrorIs(t, err, payroll.ErrGenerationFailed)
}

func TestGenerate_EmptyRosterRejected(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubPayrollRepo{}, &stubEmployeeRepo{})

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		PeriodMonth: 6,
		PeriodYear:  2025,
	})
	assert.ErrorIs(t, err, payroll.ErrNoEligibleStaff)
}

func TestGenerate_DeductionBreakdownPersisted(t *testing.T) {
	t.Parallel()

	payrollRepo := &stubPayrollRepo{}
	employeeRepo := &stubEmployeeRepo{active: []employee.Employee{
		activeEmployee("emp-1", 60000),
	}}
	svc := newTestService(payrollRepo, employeeRepo)

	resp, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		PeriodMonth: 6,
		PeriodYear:  2025,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slips, 1)

	slip := resp.Slips[0]
	assert.True(t, slip.Basic.Equal(decimal.NewFromInt(30000)), "basic: %s", slip.Basic)
	assert.True(t, slip.HRA.Equal(decimal.NewFromInt(12000)), "hra: %s", slip.HRA)
	assert.True(t, slip.PF.Equal(decimal.NewFromInt(3600)), "pf: %s", slip.PF)
	assert.True(t, slip.ProfTax.Equal(decimal.NewFromInt(200)), "prof_tax: %s", slip.ProfTax)
	assert.True(t, slip.IncomeTax.Equal(decimal.NewFromInt(1000)), "income_tax: %s", slip.IncomeTax)
	assert.True(t, slip.NetPay.Equal(decimal.NewFromInt(55200)), "net_pay: %s", slip.NetPay)
}
