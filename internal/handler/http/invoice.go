package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/garudasec/billing-backend-go/internal/domain/invoice"
	"github.com/garudasec/billing-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	IssueInvoice(w http.ResponseWriter, r *http.Request)
	DeleteInvoice(w http.ResponseWriter, r *http.Request)
	DownloadInvoicePDF(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &InvoiceHandlerImpl{invoiceService: invoiceService}
}

// CreateInvoice implements InvoiceHandler.
func (h *InvoiceHandlerImpl) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateInvoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.invoiceService.CreateInvoice(r.Context(), req)
	if err != nil {
		slog.Error("CreateInvoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created successfully", created)
}

// GetInvoice implements InvoiceHandler.
func (h *InvoiceHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	inv, err := h.invoiceService.GetInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, inv)
}

// ListInvoices implements InvoiceHandler.
func (h *InvoiceHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := invoice.ListInvoiceFilter{
		ClientID: query.Get("client_id"),
		Status:   query.Get("status"),
	}
	filter.PeriodMonth, _ = strconv.Atoi(query.Get("period_month"))
	filter.PeriodYear, _ = strconv.Atoi(query.Get("period_year"))
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	list, err := h.invoiceService.ListInvoices(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((list.TotalCount + int64(list.Limit) - 1) / int64(list.Limit))
	response.SuccessWithMeta(w, list.Data, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: totalPages,
	})
}

// IssueInvoice implements InvoiceHandler.
func (h *InvoiceHandlerImpl) IssueInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	issued, err := h.invoiceService.IssueInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Invoice issued", "invoice_no", issued.InvoiceNo)
	response.SuccessWithMessage(w, "Invoice issued successfully", issued)
}

// DeleteInvoice implements InvoiceHandler.
func (h *InvoiceHandlerImpl) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.invoiceService.DeleteInvoice(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice deleted successfully", nil)
}

// DownloadInvoicePDF implements InvoiceHandler.
func (h *InvoiceHandlerImpl) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdfBytes, err := h.invoiceService.RenderPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", id))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	_, _ = w.Write(pdfBytes)
}
