package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, d EmployeeDocument) (EmployeeDocument, error)
	GetByID(ctx context.Context, id string) (EmployeeDocument, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeDocument, error)
	Delete(ctx context.Context, id string) error
}
