package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/garudasec/billing-backend-go/internal/domain/user"
	"github.com/garudasec/billing-backend-go/internal/handler/http/response"
	usersvc "github.com/garudasec/billing-backend-go/internal/service/user"
)

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	SetUserActive(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService usersvc.UserService
}

func NewUserHandler(userService usersvc.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// CreateUser implements UserHandler.
func (h *UserHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", created)
}

// GetUser implements UserHandler.
func (h *UserHandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, u)
}

// ListUsers implements UserHandler.
func (h *UserHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// SetUserActive implements UserHandler.
func (h *UserHandlerImpl) SetUserActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetUserActive decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.userService.SetUserActive(r.Context(), id, req.Active); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User status updated successfully", nil)
}
