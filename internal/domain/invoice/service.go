package invoice

import (
	"context"
)

// InvoiceService defines business logic for invoice drafting, footer
// aggregation, and issuing.
type InvoiceService interface {
	// CreateInvoice computes every line and the footer, then persists
	// the invoice atomically. Any rejected line fails the whole call.
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter ListInvoiceFilter) (ListInvoiceResponse, error)
	IssueInvoice(ctx context.Context, id string) (InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error
	// RenderPDF renders the stored invoice as a PDF document.
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}
