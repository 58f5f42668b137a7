package invoice

import "context"

type InvoiceRepository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	List(ctx context.Context, filter ListInvoiceFilter) ([]Invoice, int64, error)
	// NextSequence returns the next invoice sequence number for a year.
	NextSequence(ctx context.Context, year int) (int, error)
	MarkIssued(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
