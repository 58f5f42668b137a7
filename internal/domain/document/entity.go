package document

import "time"

type DocumentType string

const (
	DocumentTypeIDProof      DocumentType = "id_proof"
	DocumentTypeAddressProof DocumentType = "address_proof"
	DocumentTypePoliceVerif  DocumentType = "police_verification"
	DocumentTypeContract     DocumentType = "contract"
	DocumentTypeOther        DocumentType = "other"
)

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeIDProof, DocumentTypeAddressProof, DocumentTypePoliceVerif, DocumentTypeContract, DocumentTypeOther:
		return true
	}
	return false
}

// EmployeeDocument - a stored file attached to an employee record.
type EmployeeDocument struct {
	ID         string       `json:"id"`
	EmployeeID string       `json:"employee_id"`
	Type       DocumentType `json:"type"`
	FileName   string       `json:"file_name"`
	FilePath   string       `json:"-"`
	MimeType   string       `json:"mime_type"`
	SizeBytes  int64        `json:"size_bytes"`
	UploadedBy string       `json:"uploaded_by,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
