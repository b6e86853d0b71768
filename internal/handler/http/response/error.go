package response

import (
	"errors"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/auth"
	"github.com/crewlabs/crew-backend-go/internal/domain/invitation"
	"github.com/crewlabs/crew-backend-go/internal/domain/notification"
	"github.com/crewlabs/crew-backend-go/internal/domain/schedule"
	"github.com/crewlabs/crew-backend-go/internal/domain/team"
	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrAccountSuspended):
		Forbidden(w, "Account suspended")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "Admin or HR access required")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete your own account", nil)

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrNotMember):
		Forbidden(w, "You are not a member of this team")
	case errors.Is(err, team.ErrAlreadyMember):
		Conflict(w, "You are already a member of this team")
	case errors.Is(err, team.ErrNoTeamSelected):
		BadRequest(w, "No team selected", nil)
	case errors.Is(err, team.ErrTeamHasMembers):
		Conflict(w, "Team still has members")

	// Invitation domain errors. Missing, expired and used invitations all
	// surface the same NotFound.
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrEmailMismatch):
		Forbidden(w, "This invitation was issued to a different email address")
	case errors.Is(err, invitation.ErrInviteNotAllowed):
		Forbidden(w, "Only admins can send invitations")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrEndBeforeStart):
		BadRequest(w, "end_time must be after start_time", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Notification belongs to another user")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
