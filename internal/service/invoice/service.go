package invoice

import (
	"context"
	"fmt"

	"github.com/garudasec/billing-backend-go/internal/billing"
	"github.com/garudasec/billing-backend-go/internal/domain/client"
	"github.com/garudasec/billing-backend-go/internal/domain/invoice"
	"github.com/garudasec/billing-backend-go/internal/pkg/database"
	"github.com/garudasec/billing-backend-go/internal/pkg/pdf"
	"github.com/garudasec/billing-backend-go/internal/repository/postgresql"
)

type InvoiceServiceImpl struct {
	invoiceRepo invoice.InvoiceRepository
	clientRepo  client.ClientRepository
	pdfGen      *pdf.Generator
	transact    func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepo invoice.InvoiceRepository,
	clientRepo client.ClientRepository,
	pdfGen *pdf.Generator,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		pdfGen:      pdfGen,
		transact: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// CreateInvoice computes every line and the footer before anything is
// persisted. A single rejected line fails the whole invoice; nothing
// is stored partially computed.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	engineItems := make([]billing.LineItem, len(req.LineItems))
	lineItems := make([]invoice.LineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		item, err := billing.ComputeLine(billing.LineInput{
			Service:    li.Service,
			NOP:        li.NOP,
			Duty:       li.Duty,
			Rate:       li.Rate,
			MonthDays:  li.MonthDays,
			SCPercent:  li.SCPercent,
			PFPercent:  li.PFPercent,
			ESIPercent: li.ESIPercent,
			LWFRate:    li.LWFRate,
			LevyRate:   li.LevyRate,
		})
		if err != nil {
			return invoice.InvoiceResponse{}, fmt.Errorf("%w: %w", invoice.ErrLineItemRejected, err)
		}
		engineItems[i] = item
		lineItems[i] = invoice.LineItem{
			Service:   item.Service,
			NOP:       item.NOP,
			Duty:      item.Duty,
			Rate:      item.Rate,
			MonthDays: item.MonthDays,

			SCPercent:  li.SCPercent,
			PFPercent:  li.PFPercent,
			ESIPercent: li.ESIPercent,
			LWFRate:    li.LWFRate,
			LevyRate:   li.LevyRate,

			Amount:     item.Amount,
			SCAmount:   item.SCAmount,
			PFAmount:   item.PFAmount,
			ESIAmount:  item.ESIAmount,
			LWFAmount:  item.LWFAmount,
			LevyAmount: item.LevyAmount,
		}
	}

	footer, err := billing.ComputeFooter(engineItems, billing.TaxRates{
		CGST: req.CGSTPercent,
		SGST: req.SGSTPercent,
		IGST: req.IGSTPercent,
	}, req.Others, req.TDSPercent)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	var created invoice.Invoice
	err = s.transact(ctx, func(txCtx context.Context) error {
		seq, err := s.invoiceRepo.NextSequence(txCtx, req.PeriodYear)
		if err != nil {
			return err
		}

		created, err = s.invoiceRepo.Create(txCtx, invoice.Invoice{
			InvoiceNo:   fmt.Sprintf("INV/%d/%04d", req.PeriodYear, seq),
			ClientID:    req.ClientID,
			UnitID:      req.UnitID,
			PeriodMonth: req.PeriodMonth,
			PeriodYear:  req.PeriodYear,
			Status:      invoice.InvoiceStatusDraft,
			LineItems:   lineItems,

			CGSTPercent: req.CGSTPercent,
			SGSTPercent: req.SGSTPercent,
			IGSTPercent: req.IGSTPercent,
			TDSPercent:  req.TDSPercent,
			Others:      req.Others,

			SubTotal:   footer.SubTotal,
			CGSTAmount: footer.CGSTAmount,
			SGSTAmount: footer.SGSTAmount,
			IGSTAmount: footer.IGSTAmount,
			TaxTotal:   footer.TaxTotal,
			GrandTotal: footer.GrandTotal,
			TDSAmount:  footer.TDSAmount,
			NetAmount:  footer.NetAmount,
		})
		return err
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return s.GetInvoice(ctx, created.ID)
}

func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return toInvoiceResponse(inv), nil
}

func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, filter invoice.ListInvoiceFilter) (invoice.ListInvoiceResponse, error) {
	invoices, total, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return invoice.ListInvoiceResponse{}, err
	}

	data := make([]invoice.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		data[i] = toInvoiceResponse(inv)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	return invoice.ListInvoiceResponse{
		Data:       data,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

func (s *InvoiceServiceImpl) IssueInvoice(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	if err := s.invoiceRepo.MarkIssued(ctx, id); err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return s.GetInvoice(ctx, id)
}

func (s *InvoiceServiceImpl) DeleteInvoice(ctx context.Context, id string) error {
	return s.invoiceRepo.Delete(ctx, id)
}

func (s *InvoiceServiceImpl) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.pdfGen.RenderInvoice(inv)
}

func toInvoiceResponse(inv invoice.Invoice) invoice.InvoiceResponse {
	lines := make([]invoice.LineItemResponse, len(inv.LineItems))
	for i, li := range inv.LineItems {
		lines[i] = invoice.LineItemResponse{
			ID:         li.ID,
			Service:    li.Service,
			NOP:        li.NOP,
			Duty:       li.Duty,
			Rate:       li.Rate,
			MonthDays:  li.MonthDays,
			Amount:     li.Amount,
			SCAmount:   li.SCAmount,
			PFAmount:   li.PFAmount,
			ESIAmount:  li.ESIAmount,
			LWFAmount:  li.LWFAmount,
			LevyAmount: li.LevyAmount,
		}
	}

	return invoice.InvoiceResponse{
		ID:          inv.ID,
		InvoiceNo:   inv.InvoiceNo,
		ClientID:    inv.ClientID,
		ClientName:  inv.ClientName,
		UnitID:      inv.UnitID,
		UnitName:    inv.UnitName,
		PeriodMonth: inv.PeriodMonth,
		PeriodYear:  inv.PeriodYear,
		Status:      string(inv.Status),
		LineItems:   lines,

		CGSTPercent: inv.CGSTPercent,
		SGSTPercent: inv.SGSTPercent,
		IGSTPercent: inv.IGSTPercent,
		TDSPercent:  inv.TDSPercent,
		Others:      inv.Others,

		SubTotal:   inv.SubTotal,
		CGSTAmount: inv.CGSTAmount,
		SGSTAmount: inv.SGSTAmount,
		IGSTAmount: inv.IGSTAmount,
		TaxTotal:   inv.TaxTotal,
		GrandTotal: inv.GrandTotal,
		TDSAmount:  inv.TDSAmount,
		NetAmount:  inv.NetAmount,
	}
}
