package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/schedule"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/middleware"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MySchedule(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// List implements ScheduleHandler.
func (h *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	schedules, err := h.scheduleService.List(r.Context(), actor, middleware.CurrentTeamID(r.Context()))
	if err != nil {
		slog.Error("List schedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedules)
}

// MySchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) MySchedule(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	schedules, err := h.scheduleService.MySchedule(r.Context(), actor.ID, middleware.CurrentTeamID(r.Context()))
	if err != nil {
		slog.Error("MySchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedules)
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var createReq schedule.CreateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create schedule validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.scheduleService.Create(r.Context(), actor, middleware.CurrentTeamID(r.Context()), createReq)
	if err != nil {
		slog.Error("Create schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule created", "schedule_id", created.ID)
	response.Created(w, "Schedule created successfully", created)
}

// Update implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var updateReq schedule.UpdateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update schedule validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.scheduleService.Update(r.Context(), actor, chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated successfully", updated)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.scheduleService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule deleted successfully", nil)
}
