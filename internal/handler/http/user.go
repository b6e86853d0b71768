package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/middleware"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SendMagicLinkInvite(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context(), middleware.CurrentTeamID(r.Context()))
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.userService.Create(r.Context(), middleware.CurrentTeamID(r.Context()), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User created", "user_id", created.ID)
	response.Created(w, "User created successfully", created)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.userService.Update(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", updated)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.userService.Delete(r.Context(), actor.ID, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted successfully", nil)
}

// SendMagicLinkInvite implements UserHandler.
func (h *UserHandlerImpl) SendMagicLinkInvite(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var inviteReq user.MagicLinkInviteRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&inviteReq); err != nil {
		slog.Error("Magic link invite decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := inviteReq.Validate(); err != nil {
		slog.Error("Magic link invite validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	err := h.userService.SendMagicLinkInvite(r.Context(), actor, middleware.CurrentTeamID(r.Context()), inviteReq)
	if err != nil {
		slog.Error("Magic link invite service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Magic link invite sent", "email", inviteReq.Email)
	response.SuccessWithMessage(w, "Invitation sent", nil)
}

// Me implements UserHandler. Returns the authenticated user's own record.
func (h *UserHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	response.Success(w, user.ToResponse(*actor))
}
