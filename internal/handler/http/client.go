package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/garudasec/billing-backend-go/internal/domain/client"
	"github.com/garudasec/billing-backend-go/internal/handler/http/response"
)

type ClientHandler interface {
	CreateClient(w http.ResponseWriter, r *http.Request)
	GetClient(w http.ResponseWriter, r *http.Request)
	ListClients(w http.ResponseWriter, r *http.Request)
	UpdateClient(w http.ResponseWriter, r *http.Request)
	DeleteClient(w http.ResponseWriter, r *http.Request)
	CreateUnit(w http.ResponseWriter, r *http.Request)
	ListUnits(w http.ResponseWriter, r *http.Request)
	DeleteUnit(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService client.ClientService
}

func NewClientHandler(clientService client.ClientService) ClientHandler {
	return &ClientHandlerImpl{clientService: clientService}
}

// CreateClient implements ClientHandler.
func (h *ClientHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.clientService.CreateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created successfully", created)
}

// GetClient implements ClientHandler.
func (h *ClientHandlerImpl) GetClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.clientService.GetClient(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, c)
}

// ListClients implements ClientHandler.
func (h *ClientHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	clients, err := h.clientService.ListClients(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, clients)
}

// UpdateClient implements ClientHandler.
func (h *ClientHandlerImpl) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateClient decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.clientService.UpdateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", updated)
}

// DeleteClient implements ClientHandler.
func (h *ClientHandlerImpl) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.clientService.DeleteClient(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

// CreateUnit implements ClientHandler.
func (h *ClientHandlerImpl) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req client.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUnit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ClientID = chi.URLParam(r, "id")

	created, err := h.clientService.CreateUnit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Unit created successfully", created)
}

// ListUnits implements ClientHandler.
func (h *ClientHandlerImpl) ListUnits(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	units, err := h.clientService.ListUnits(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, units)
}

// DeleteUnit implements ClientHandler.
func (h *ClientHandlerImpl) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "unitID")

	if err := h.clientService.DeleteUnit(r.Context(), unitID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unit deleted successfully", nil)
}
