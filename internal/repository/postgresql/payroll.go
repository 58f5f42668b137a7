package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/garudasec/billing-backend-go/internal/domain/payroll"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) GetProcessedEmployeeIDs(ctx context.Context, month, year int) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id
		FROM payroll_slips
		WHERE period_month = $1 AND period_year = $2
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get processed employees: %w", err)
	}
	defer rows.Close()

	processed := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		processed[id] = true
	}

	return processed, rows.Err()
}

// CreateSlips inserts the whole batch; callers wrap it in a
// transaction so a run lands atomically. uk_payroll_slips_employee_period
// enforces one slip per (employee, period) even when two runs for the
// same month race past the processed-set read.
func (r *payrollRepository) CreateSlips(ctx context.Context, slips []payroll.PayrollSlip) ([]payroll.PayrollSlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_slips (
			employee_id, period_month, period_year, status,
			gross_salary, basic, hra, allowances,
			pf, prof_tax, income_tax, deductions, net_pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	out := make([]payroll.PayrollSlip, len(slips))
	for i, s := range slips {
		err := q.QueryRow(ctx, query,
			s.EmployeeID, s.PeriodMonth, s.PeriodYear, s.Status,
			s.GrossSalary, s.Basic, s.HRA, s.Allowances,
			s.PF, s.ProfTax, s.IncomeTax, s.Deductions, s.NetPay,
		).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			if strings.Contains(err.Error(), "uk_payroll_slips_employee_period") {
				return nil, payroll.ErrSlipExists
			}
			return nil, fmt.Errorf("failed to create payroll slip for employee %s: %w", s.EmployeeID, err)
		}
		out[i] = s
	}

	return out, nil
}

const slipSelectColumns = `
	s.id, s.employee_id, s.period_month, s.period_year, s.status,
	s.gross_salary, s.basic, s.hra, s.allowances,
	s.pf, s.prof_tax, s.income_tax, s.deductions, s.net_pay,
	s.paid_at, s.created_at, s.updated_at,
	e.employee_code, e.full_name, e.designation, u.name AS unit_name
`

func scanSlip(row pgx.Row) (payroll.PayrollSlip, error) {
	var s payroll.PayrollSlip
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.PeriodMonth, &s.PeriodYear, &s.Status,
		&s.GrossSalary, &s.Basic, &s.HRA, &s.Allowances,
		&s.PF, &s.ProfTax, &s.IncomeTax, &s.Deductions, &s.NetPay,
		&s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeCode, &s.EmployeeName, &s.Designation, &s.UnitName,
	)
	return s, err
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollSlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slipSelectColumns + `
		FROM payroll_slips s
		JOIN employees e ON e.id = s.employee_id
		LEFT JOIN units u ON u.id = e.unit_id
		WHERE s.id = $1
	`

	s, err := scanSlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollSlip{}, payroll.ErrSlipNotFound
		}
		return payroll.PayrollSlip{}, fmt.Errorf("failed to get payroll slip: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.ListSlipFilter) ([]payroll.PayrollSlip, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND s.employee_id = $%d", argPos)
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.PeriodMonth > 0 {
		where += fmt.Sprintf(" AND s.period_month = $%d", argPos)
		args = append(args, filter.PeriodMonth)
		argPos++
	}
	if filter.PeriodYear > 0 {
		where += fmt.Sprintf(" AND s.period_year = $%d", argPos)
		args = append(args, filter.PeriodYear)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND s.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM payroll_slips s` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll slips: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := `
		SELECT ` + slipSelectColumns + `
		FROM payroll_slips s
		JOIN employees e ON e.id = s.employee_id
		LEFT JOIN units u ON u.id = e.unit_id
	` + where + fmt.Sprintf(" ORDER BY e.employee_code LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll slips: %w", err)
	}
	defer rows.Close()

	var slips []payroll.PayrollSlip
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll slip: %w", err)
		}
		slips = append(slips, s)
	}

	return slips, total, rows.Err()
}

func (r *payrollRepository) MarkPaid(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_slips SET status = $2, paid_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	tag, err := q.Exec(ctx, query, id, payroll.SlipStatusPaid, payroll.SlipStatusDraft)
	if err != nil {
		return fmt.Errorf("failed to mark payroll slip paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return payroll.ErrSlipAlreadyPaid
	}

	return nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_slips WHERE id = $1 AND status = $2`, id, payroll.SlipStatusDraft)
	if err != nil {
		return fmt.Errorf("failed to delete payroll slip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return payroll.ErrSlipAlreadyPaid
	}

	return nil
}
