package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/garudasec/billing-backend-go/internal/domain/document"
	"github.com/garudasec/billing-backend-go/internal/domain/employee"
	"github.com/garudasec/billing-backend-go/internal/pkg/storage"
)

const maxDocumentSize = 10 << 20 // 10 MiB

var allowedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png"}

// FileService stores employee documents and serves them back.
type FileService interface {
	UploadDocument(ctx context.Context, employeeID string, docType document.DocumentType, fileName string, size int64, contentType string, r io.Reader, uploadedBy string) (document.EmployeeDocument, error)
	DownloadDocument(ctx context.Context, id string) (document.EmployeeDocument, io.ReadCloser, error)
	ListDocuments(ctx context.Context, employeeID string) ([]document.EmployeeDocument, error)
	DeleteDocument(ctx context.Context, id string) error
}

type FileServiceImpl struct {
	storage      storage.FileStorage
	documentRepo document.DocumentRepository
	employeeRepo employee.EmployeeRepository
}

func NewFileService(
	st storage.FileStorage,
	documentRepo document.DocumentRepository,
	employeeRepo employee.EmployeeRepository,
) FileService {
	return &FileServiceImpl{
		storage:      st,
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *FileServiceImpl) UploadDocument(ctx context.Context, employeeID string, docType document.DocumentType, fileName string, size int64, contentType string, r io.Reader, uploadedBy string) (document.EmployeeDocument, error) {
	if size > maxDocumentSize {
		return document.EmployeeDocument{}, document.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	allowed := false
	for _, e := range allowedExtensions {
		if e == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return document.EmployeeDocument{}, document.ErrUnsupportedType
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return document.EmployeeDocument{}, err
	}

	uniqueID := uuid.New().String()
	path := fmt.Sprintf("documents/%s/%s%s", employeeID, uniqueID, ext)

	storedPath, err := s.storage.Upload(ctx, r, path, contentType)
	if err != nil {
		return document.EmployeeDocument{}, fmt.Errorf("failed to store document: %w", err)
	}

	doc, err := s.documentRepo.Create(ctx, document.EmployeeDocument{
		EmployeeID: employeeID,
		Type:       docType,
		FileName:   fileName,
		FilePath:   storedPath,
		MimeType:   contentType,
		SizeBytes:  size,
		UploadedBy: uploadedBy,
	})
	if err != nil {
		// The file is already on disk; remove it so nothing dangles.
		_ = s.storage.Delete(ctx, storedPath)
		return document.EmployeeDocument{}, err
	}

	return doc, nil
}

func (s *FileServiceImpl) DownloadDocument(ctx context.Context, id string) (document.EmployeeDocument, io.ReadCloser, error) {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return document.EmployeeDocument{}, nil, err
	}

	rc, err := s.storage.Download(ctx, doc.FilePath)
	if err != nil {
		return document.EmployeeDocument{}, nil, err
	}

	return doc, rc, nil
}

func (s *FileServiceImpl) ListDocuments(ctx context.Context, employeeID string) ([]document.EmployeeDocument, error) {
	return s.documentRepo.ListByEmployee(ctx, employeeID)
}

func (s *FileServiceImpl) DeleteDocument(ctx context.Context, id string) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}

	return s.storage.Delete(ctx, doc.FilePath)
}
