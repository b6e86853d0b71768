package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/team"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/middleware"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/response"
	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
)

type TeamHandler interface {
	Browse(w http.ResponseWriter, r *http.Request)
	MyTeams(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Switch(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
}

type TeamHandlerImpl struct {
	teamService team.TeamService
}

func NewTeamHandler(teamService team.TeamService) TeamHandler {
	return &TeamHandlerImpl{teamService: teamService}
}

// Browse implements TeamHandler.
func (h *TeamHandlerImpl) Browse(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.Browse(r.Context())
	if err != nil {
		slog.Error("Browse teams service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

// MyTeams implements TeamHandler.
func (h *TeamHandlerImpl) MyTeams(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	teams, err := h.teamService.MyTeams(r.Context(), actor.ID)
	if err != nil {
		slog.Error("MyTeams service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

// Create implements TeamHandler.
func (h *TeamHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var createReq team.CreateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create team validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.teamService.Create(r.Context(), actor.ID, createReq)
	if err != nil {
		slog.Error("Create team service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Creating a team also selects it
	if sess := session.FromContext(r.Context()); sess != nil {
		sess.Put(session.KeyCurrentTeamID, created.ID)
	}

	slog.Info("Team created", "team_id", created.ID)
	response.Created(w, "Team created successfully", created)
}

// Get implements TeamHandler.
func (h *TeamHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.teamService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

// Update implements TeamHandler.
func (h *TeamHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq team.UpdateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update team validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.teamService.Update(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update team service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team updated successfully", updated)
}

// Delete implements TeamHandler.
func (h *TeamHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.teamService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete team service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Clear the pointer if the deleted team was selected
	if sess := session.FromContext(r.Context()); sess != nil {
		if current, _ := sess.Get(session.KeyCurrentTeamID); current == id {
			sess.Delete(session.KeyCurrentTeamID)
		}
	}

	response.SuccessWithMessage(w, "Team deleted successfully", nil)
}

// Join implements TeamHandler.
func (h *TeamHandlerImpl) Join(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	joined, err := h.teamService.Join(r.Context(), chi.URLParam(r, "id"), actor.ID)
	if err != nil {
		slog.Error("Join team service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if sess := session.FromContext(r.Context()); sess != nil {
		sess.Put(session.KeyCurrentTeamID, joined.ID)
	}

	slog.Info("User joined team", "team_id", joined.ID, "user_id", actor.ID)
	response.SuccessWithMessage(w, "Joined team successfully", joined)
}

// Switch implements TeamHandler. A null team_id clears the selection.
func (h *TeamHandlerImpl) Switch(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var switchReq team.SwitchRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&switchReq); err != nil {
		slog.Error("Switch team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	target, err := h.teamService.Switch(r.Context(), actor.ID, switchReq.TeamID)
	if err != nil {
		slog.Error("Switch team service error", "error", err)
		response.HandleError(w, err)
		return
	}

	sess := session.FromContext(r.Context())
	if target == nil {
		if sess != nil {
			sess.Delete(session.KeyCurrentTeamID)
		}
		response.SuccessWithMessage(w, "Team selection cleared", nil)
		return
	}

	if sess != nil {
		sess.Put(session.KeyCurrentTeamID, target.ID)
	}
	response.SuccessWithMessage(w, "Switched team successfully", target)
}

// Current implements TeamHandler. Returns the session's selected team.
func (h *TeamHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	teamID := middleware.CurrentTeamID(r.Context())
	if teamID == "" {
		response.HandleError(w, team.ErrNoTeamSelected)
		return
	}

	t, err := h.teamService.Get(r.Context(), teamID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}
