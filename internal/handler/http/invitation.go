package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/invitation"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/middleware"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/response"
	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
)

type InvitationHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	AcceptByToken(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &InvitationHandlerImpl{invitationService: invitationService}
}

// Issue implements InvitationHandler.
func (h *InvitationHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	actor := middleware.IdentityFromContext(r.Context())
	if actor == nil {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var issueReq invitation.IssueRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&issueReq); err != nil {
		slog.Error("Issue invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Default to the session's current team when none was given
	if issueReq.TeamID == "" {
		issueReq.TeamID = middleware.CurrentTeamID(r.Context())
	}

	// Validate DTO
	if err := issueReq.Validate(); err != nil {
		slog.Error("Issue invitation validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	issueResponse, err := h.invitationService.Issue(r.Context(), actor, issueReq)
	if err != nil {
		slog.Error("Issue invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation issued", "invitation_id", issueResponse.ID, "team_id", issueResponse.TeamID)
	response.Created(w, "Invitation sent", issueResponse)
}

// AcceptByToken implements InvitationHandler. This is the magic-link landing
// route: anonymous visitors get login_required with the token parked in their
// session.
func (h *InvitationHandlerImpl) AcceptByToken(w http.ResponseWriter, r *http.Request) {
	tok := chi.URLParam(r, "token")
	if tok == "" {
		response.HandleError(w, invitation.ErrInvitationNotFound)
		return
	}

	acceptResponse, err := h.invitationService.AcceptByToken(
		r.Context(),
		session.FromContext(r.Context()),
		middleware.IdentityFromContext(r.Context()),
		tok,
	)
	if err != nil {
		slog.Error("Accept invitation error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.writeOutcome(w, acceptResponse)
}

// Accept implements InvitationHandler. The form path takes either the token
// or an otp_code+email pair.
func (h *InvitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	var acceptReq invitation.AcceptRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&acceptReq); err != nil {
		slog.Error("Accept invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Fall back to the token parked in the session by an earlier anonymous
	// visit, so clients can POST an empty body after logging in.
	if acceptReq.Token == "" && acceptReq.OTPCode == "" {
		if sess := session.FromContext(r.Context()); sess != nil {
			if tok, ok := sess.Get(session.KeyInvitationToken); ok {
				acceptReq.Token = tok
			}
		}
	}

	// Validate DTO
	if err := acceptReq.Validate(); err != nil {
		slog.Error("Accept invitation validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	acceptResponse, err := h.invitationService.Accept(
		r.Context(),
		session.FromContext(r.Context()),
		middleware.IdentityFromContext(r.Context()),
		acceptReq,
	)
	if err != nil {
		slog.Error("Accept invitation error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.writeOutcome(w, acceptResponse)
}

func (h *InvitationHandlerImpl) writeOutcome(w http.ResponseWriter, acceptResponse invitation.AcceptResponse) {
	switch acceptResponse.Status {
	case invitation.OutcomeAccepted:
		slog.Info("Invitation accepted", "team_id", acceptResponse.TeamID)
		response.SuccessWithMessage(w, "Invitation accepted", acceptResponse)
	case invitation.OutcomeLoginRequired:
		response.SuccessWithMessage(w, "Log in or register to accept this invitation", acceptResponse)
	default:
		response.InternalServerError(w, "An unexpected error occurred")
	}
}
