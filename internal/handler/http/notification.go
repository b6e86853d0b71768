package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/notification"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/middleware"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	Feed(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkUnread(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	BulkMarkRead(w http.ResponseWriter, r *http.Request)
	BulkMarkUnread(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// Feed implements NotificationHandler.
func (h *NotificationHandlerImpl) Feed(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	feed, err := h.notificationService.Feed(r.Context(), middleware.CurrentTeamID(r.Context()), actor.ID)
	if err != nil {
		slog.Error("Notification feed service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, feed)
}

// Create implements NotificationHandler.
func (h *NotificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var createReq notification.CreateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create notification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create notification validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.notificationService.Create(r.Context(), middleware.CurrentTeamID(r.Context()), actor.ID, createReq)
	if err != nil {
		slog.Error("Create notification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notification sent", created)
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, true)
}

// MarkUnread implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkUnread(w http.ResponseWriter, r *http.Request) {
	h.setRead(w, r, false)
}

func (h *NotificationHandlerImpl) setRead(w http.ResponseWriter, r *http.Request, read bool) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	var err error
	if read {
		err = h.notificationService.MarkRead(r.Context(), actor.ID, id)
	} else {
		err = h.notificationService.MarkUnread(r.Context(), actor.ID, id)
	}
	if err != nil {
		slog.Error("Set notification read state error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification updated", nil)
}

// MarkAllRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), middleware.CurrentTeamID(r.Context()), actor.ID); err != nil {
		slog.Error("Mark all notifications read error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}

// BulkMarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) BulkMarkRead(w http.ResponseWriter, r *http.Request) {
	h.bulkSetRead(w, r, true)
}

// BulkMarkUnread implements NotificationHandler.
func (h *NotificationHandlerImpl) BulkMarkUnread(w http.ResponseWriter, r *http.Request) {
	h.bulkSetRead(w, r, false)
}

func (h *NotificationHandlerImpl) bulkSetRead(w http.ResponseWriter, r *http.Request, read bool) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var bulkReq notification.BulkRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("Bulk notification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := bulkReq.Validate(); err != nil {
		slog.Error("Bulk notification validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	var err error
	if read {
		err = h.notificationService.BulkMarkRead(r.Context(), actor.ID, bulkReq)
	} else {
		err = h.notificationService.BulkMarkUnread(r.Context(), actor.ID, bulkReq)
	}
	if err != nil {
		slog.Error("Bulk notification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications updated", nil)
}
