package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/garudasec/billing-backend-go/internal/domain/document"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d document.EmployeeDocument) (document.EmployeeDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_documents (employee_id, type, file_name, file_path, mime_type, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	out := d
	err := q.QueryRow(ctx, query,
		d.EmployeeID, d.Type, d.FileName, d.FilePath, d.MimeType, d.SizeBytes, d.UploadedBy,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return document.EmployeeDocument{}, fmt.Errorf("failed to create document: %w", err)
	}

	return out, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (document.EmployeeDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, file_name, file_path, mime_type, size_bytes, uploaded_by, created_at
		FROM employee_documents
		WHERE id = $1
	`

	var d document.EmployeeDocument
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.EmployeeID, &d.Type, &d.FileName, &d.FilePath, &d.MimeType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.EmployeeDocument{}, document.ErrDocumentNotFound
		}
		return document.EmployeeDocument{}, fmt.Errorf("failed to get document: %w", err)
	}

	return d, nil
}

func (r *documentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]document.EmployeeDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, file_name, file_path, mime_type, size_bytes, uploaded_by, created_at
		FROM employee_documents
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.EmployeeDocument
	for rows.Next() {
		var d document.EmployeeDocument
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.Type, &d.FileName, &d.FilePath, &d.MimeType, &d.SizeBytes, &d.UploadedBy, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}
