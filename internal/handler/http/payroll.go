package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/garudasec/billing-backend-go/internal/domain/payroll"
	"github.com/garudasec/billing-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetSlip(w http.ResponseWriter, r *http.Request)
	ListSlips(w http.ResponseWriter, r *http.Request)
	MarkSlipPaid(w http.ResponseWriter, r *http.Request)
	DeleteSlip(w http.ResponseWriter, r *http.Request)
	DownloadSlipPDF(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Generate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated successfully", result)
}

// GetSlip implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSlip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slip, err := h.payrollService.GetSlip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// ListSlips implements PayrollHandler.
func (h *PayrollHandlerImpl) ListSlips(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := payroll.ListSlipFilter{
		EmployeeID: query.Get("employee_id"),
		Status:     query.Get("status"),
	}
	filter.PeriodMonth, _ = strconv.Atoi(query.Get("period_month"))
	filter.PeriodYear, _ = strconv.Atoi(query.Get("period_year"))
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	list, err := h.payrollService.ListSlips(r.Context(), filter)
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

// MarkSlipPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkSlipPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slip, err := h.payrollService.MarkSlipPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll slip marked as paid", slip)
}

// DeleteSlip implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteSlip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeleteSlip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll slip deleted successfully", nil)
}

// DownloadSlipPDF implements PayrollHandler.
func (h *PayrollHandlerImpl) DownloadSlipPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdfBytes, err := h.payrollService.RenderSlipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", id))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	_, _ = w.Write(pdfBytes)
}
