package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/garudasec/billing-backend-go/internal/domain/rate"
	"github.com/garudasec/billing-backend-go/internal/handler/http/response"
)

type RateHandler interface {
	CreateRate(w http.ResponseWriter, r *http.Request)
	GetRate(w http.ResponseWriter, r *http.Request)
	ListRatesByClient(w http.ResponseWriter, r *http.Request)
	UpdateRate(w http.ResponseWriter, r *http.Request)
	DeleteRate(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type RateHandlerImpl struct {
	rateService rate.RateService
}

func NewRateHandler(rateService rate.RateService) RateHandler {
	return &RateHandlerImpl{rateService: rateService}
}

// CreateRate implements RateHandler.
func (h *RateHandlerImpl) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req rate.CreateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.rateService.CreateRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rate record created successfully", created)
}

// GetRate implements RateHandler.
func (h *RateHandlerImpl) GetRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.rateService.GetRate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// ListRatesByClient implements RateHandler.
func (h *RateHandlerImpl) ListRatesByClient(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		response.BadRequest(w, "client_id query parameter is required", nil)
		return
	}

	rates, err := h.rateService.ListRatesByClient(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rates)
}

// UpdateRate implements RateHandler.
func (h *RateHandlerImpl) UpdateRate(w http.ResponseWriter, r *http.Request) {
	var req rate.UpdateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.rateService.UpdateRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rate record updated successfully", updated)
}

// DeleteRate implements RateHandler.
func (h *RateHandlerImpl) DeleteRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.rateService.DeleteRate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rate record deleted successfully", nil)
}

// Resolve implements RateHandler.
func (h *RateHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	clientID := query.Get("client_id")
	designation := query.Get("designation")
	if clientID == "" || designation == "" {
		response.BadRequest(w, "client_id and designation query parameters are required", nil)
		return
	}

	var unitID *string
	if v := query.Get("unit_id"); v != "" {
		unitID = &v
	}

	resolved, err := h.rateService.Resolve(r.Context(), clientID, unitID, designation)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resolved)
}
