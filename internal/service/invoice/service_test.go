package invoice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/client"
	"github.com/garudasec/billing-backend-go/internal/domain/invoice"
	"github.com/garudasec/billing-backend-go/internal/pkg/validator"
)

type stubInvoiceRepo struct {
	stored   *invoice.Invoice
	seqCalls int
}

func (s *stubInvoiceRepo) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	inv.ID = "inv-1"
	s.stored = &inv
	return inv, nil
}

func (s *stubInvoiceRepo) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	if s.stored != nil && s.stored.ID == id {
		return *s.stored, nil
	}
	return invoice.Invoice{}, invoice.ErrInvoiceNotFound
}

func (s *stubInvoiceRepo) List(ctx context.Context, filter invoice.ListInvoiceFilter) ([]invoice.Invoice, int64, error) {
	return nil, 0, nil
}

func (s *stubInvoiceRepo) NextSequence(ctx context.Context, year int) (int, error) {
	s.seqCalls++
	return s.seqCalls, nil
}

func (s *stubInvoiceRepo) MarkIssued(ctx context.Context, id string) error { return nil }

func (s *stubInvoiceRepo) Delete(ctx context.Context, id string) error { return nil }

type stubClientRepo struct {
	missing bool
}

func (s *stubClientRepo) Create(ctx context.Context, c client.Client) (client.Client, error) {
	return c, nil
}

func (s *stubClientRepo) GetByID(ctx context.Context, id string) (client.Client, error) {
	if s.missing {
		return client.Client{}, client.ErrClientNotFound
	}
	return client.Client{ID: id, Name: "Acme Industries"}, nil
}

func (s *stubClientRepo) List(ctx context.Context, activeOnly bool) ([]client.Client, error) {
	return nil, nil
}

func (s *stubClientRepo) Update(ctx context.Context, req client.UpdateClientRequest) error {
	return nil
}

func (s *stubClientRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService(invoiceRepo *stubInvoiceRepo, clientRepo *stubClientRepo) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		transact: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func guardLine() invoice.LineItemRequest {
	return invoice.LineItemRequest{
		Service:   "Security Guard",
		NOP:       2,
		Duty:      31,
		Rate:      decimal.NewFromInt(15500),
		MonthDays: 31,
	}
}

func TestCreateInvoice_RejectedLinePersistsNothing(t *testing.T) {
	t.Parallel()

	invoiceRepo := &stubInvoiceRepo{}
	svc := newTestService(invoiceRepo, &stubClientRepo{})

	bad := guardLine()
	bad.Rate = decimal.NewFromInt(-100)

	_, err := svc.CreateInvoice(context.Background(), invoice.CreateInvoiceRequest{
		ClientID:    "client-1",
		PeriodMonth: 6,
		PeriodYear:  2025,
		LineItems:   []invoice.LineItemRequest{guardLine(), bad},
	})

	assert.ErrorIs(t, err, invoice.ErrLineItemRejected)
	assert.ErrorIs(t, err, billing.ErrNegativeComponent)
	assert.Nil(t, invoiceRepo.stored)
	assert.Zero(t, invoiceRepo.seqCalls)
}

func TestCreateInvoice_RequiresLineItems(t *testing.T) {
	t.Parallel()

	invoiceRepo := &stubInvoiceRepo{}
	svc := newTestService(invoiceRepo, &stubClientRepo{})

	_, err := svc.CreateInvoice(context.Background(), invoice.CreateInvoiceRequest{
		ClientID:    "client-1",
		PeriodMonth: 6,
		PeriodYear:  2025,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "line_items")
	assert.Nil(t, invoiceRepo.stored)
}

func TestCreateInvoice_UnknownClientRejected(t *testing.T) {
	t.Parallel()

	invoiceRepo := &stubInvoiceRepo{}
	svc := newTestService(invoiceRepo, &stubClientRepo{missing: true})

	_, err := svc.CreateInvoice(context.Background(), invoice.CreateInvoiceRequest{
		ClientID:    "client-9",
		PeriodMonth: 6,
		PeriodYear:  2025,
		LineItems:   []invoice.LineItemRequest{guardLine()},
	})

	assert.ErrorIs(t, err, client.ErrClientNotFound)
	assert.Nil(t, invoiceRepo.stored)
}

func TestCreateInvoice_NumbersAndPersistsTotals(t *testing.T) {
	t.Parallel()

	invoiceRepo := &stubInvoiceRepo{}
	svc := newTestService(invoiceRepo, &stubClientRepo{})

	resp, err := svc.CreateInvoice(context.Background(), invoice.CreateInvoiceRequest{
		ClientID:    "client-1",
		PeriodMonth: 6,
		PeriodYear:  2025,
		LineItems:   []invoice.LineItemRequest{guardLine()},
		CGSTPercent: decimal.NewFromInt(9),
		SGSTPercent: decimal.NewFromInt(9),
	})
	require.NoError(t, err)

	assert.Equal(t, "INV/2025/0001", resp.InvoiceNo)
	assert.Equal(t, string(invoice.InvoiceStatusDraft), resp.Status)
	assert.True(t, resp.SubTotal.Equal(decimal.NewFromInt(31000)), "sub_total: %s", resp.SubTotal)
	assert.True(t, resp.CGSTAmount.Equal(decimal.NewFromInt(2790)), "cgst: %s", resp.CGSTAmount)
	assert.True(t, resp.SGSTAmount.Equal(decimal.NewFromInt(2790)), "sgst: %s", resp.SGSTAmount)
	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(36580)), "grand_total: %s", resp.GrandTotal)
	assert.True(t, resp.NetAmount.Equal(decimal.NewFromInt(36580)), "net_amount: %s", resp.NetAmount)

	require.NotNil(t, invoiceRepo.stored)
	require.Len(t, invoiceRepo.stored.LineItems, 1)
	assert.True(t, invoiceRepo.stored.LineItems[0].Amount.Equal(decimal.NewFromInt(31000)))
}
