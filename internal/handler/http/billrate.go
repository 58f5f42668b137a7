package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/garudasec/billing-backend-go/internal/domain/billrate"
	"github.com/garudasec/billing-backend-go/internal/handler/http/response"
)

type BillRateHandler interface {
	Estimate(w http.ResponseWriter, r *http.Request)
	SaveEstimate(w http.ResponseWriter, r *http.Request)
	GetEstimate(w http.ResponseWriter, r *http.Request)
	ListEstimatesByClient(w http.ResponseWriter, r *http.Request)
	DeleteEstimate(w http.ResponseWriter, r *http.Request)
}

type BillRateHandlerImpl struct {
	billRateService billrate.BillRateService
}

func NewBillRateHandler(billRateService billrate.BillRateService) BillRateHandler {
	return &BillRateHandlerImpl{billRateService: billRateService}
}

// Estimate implements BillRateHandler. Nothing is persisted; the
// response carries the computed breakdown only.
func (h *BillRateHandlerImpl) Estimate(w http.ResponseWriter, r *http.Request) {
	var req billrate.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Estimate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	estimate, err := h.billRateService.Estimate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, estimate)
}

// SaveEstimate implements BillRateHandler.
func (h *BillRateHandlerImpl) SaveEstimate(w http.ResponseWriter, r *http.Request) {
	var req billrate.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveEstimate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.billRateService.SaveEstimate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Estimate saved successfully", saved)
}

// GetEstimate implements BillRateHandler.
func (h *BillRateHandlerImpl) GetEstimate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	estimate, err := h.billRateService.GetEstimate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, estimate)
}

// ListEstimatesByClient implements BillRateHandler.
func (h *BillRateHandlerImpl) ListEstimatesByClient(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		response.BadRequest(w, "client_id query parameter is required", nil)
		return
	}

	estimates, err := h.billRateService.ListEstimatesByClient(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, estimates)
}

// DeleteEstimate implements BillRateHandler.
func (h *BillRateHandlerImpl) DeleteEstimate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.billRateService.DeleteEstimate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Estimate deleted successfully", nil)
}
