package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/garudasec/billing-backend-go/internal/domain/employee"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelectColumns = `
	e.id, e.employee_code, e.full_name, e.designation, e.unit_id, e.gross_salary,
	e.status, e.join_date, e.resign_date,
	e.pan, e.uan, e.esic_no,
	e.bank_name, e.bank_account_no, e.bank_ifsc,
	e.phone, e.address, e.created_at, e.updated_at,
	u.name AS unit_name, c.name AS client_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Designation, &e.UnitID, &e.GrossSalary,
		&e.Status, &e.JoinDate, &e.ResignDate,
		&e.PAN, &e.UAN, &e.ESICNo,
		&e.BankName, &e.BankAccountNo, &e.BankIFSC,
		&e.Phone, &e.Address, &e.CreatedAt, &e.UpdatedAt,
		&e.UnitName, &e.ClientName,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, full_name, designation, unit_id, gross_salary, status, join_date,
			pan, uan, esic_no, bank_name, bank_account_no, bank_ifsc, phone, address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`

	out := e
	err := q.QueryRow(ctx, query,
		e.EmployeeCode, e.FullName, e.Designation, e.UnitID, e.GrossSalary, e.Status, e.JoinDate,
		e.PAN, e.UAN, e.ESICNo, e.BankName, e.BankAccountNo, e.BankIFSC, e.Phone, e.Address,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return out, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeSelectColumns + `
		FROM employees e
		LEFT JOIN units u ON u.id = e.unit_id
		LEFT JOIN clients c ON c.id = u.client_id
		WHERE e.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeSelectColumns + `
		FROM employees e
		LEFT JOIN units u ON u.id = e.unit_id
		LEFT JOIN clients c ON c.id = u.client_id
		WHERE e.employee_code = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.UnitID != "" {
		where += fmt.Sprintf(" AND e.unit_id = $%d", argPos)
		args = append(args, filter.UnitID)
		argPos++
	}
	if filter.Designation != "" {
		where += fmt.Sprintf(" AND LOWER(e.designation) = LOWER($%d)", argPos)
		args = append(args, filter.Designation)
		argPos++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND e.status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.employee_code ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
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
		SELECT ` + employeeSelectColumns + `
		FROM employees e
		LEFT JOIN units u ON u.id = e.unit_id
		LEFT JOIN clients c ON c.id = u.client_id
	` + where + fmt.Sprintf(" ORDER BY e.employee_code LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, total, rows.Err()
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeSelectColumns + `
		FROM employees e
		LEFT JOIN units u ON u.id = e.unit_id
		LEFT JOIN clients c ON c.id = u.client_id
		WHERE e.status = $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, employee.EmployeeStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $2, designation = $3, unit_id = $4, gross_salary = $5,
			status = $6, resign_date = $7,
			pan = $8, uan = $9, esic_no = $10,
			bank_name = $11, bank_account_no = $12, bank_ifsc = $13,
			phone = $14, address = $15,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	out := e
	err := q.QueryRow(ctx, query,
		e.ID, e.FullName, e.Designation, e.UnitID, e.GrossSalary,
		e.Status, e.ResignDate,
		e.PAN, e.UAN, e.ESICNo,
		e.BankName, e.BankAccountNo, e.BankIFSC,
		e.Phone, e.Address,
	).Scan(&out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return out, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
