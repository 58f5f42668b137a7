package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee roster.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter ListEmployeeFilter) (ListEmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// ResignEmployee marks the employee resigned effective the given date.
	ResignEmployee(ctx context.Context, id string, req ResignEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
}
