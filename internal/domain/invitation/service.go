package invitation

import (
	"context"

	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
)

// InvitationService defines the interface for the invitation lifecycle:
// issuance, validation lookups and the acceptance state machine.
type InvitationService interface {
	// Issue creates an invitation for a team+email, generates the token and
	// optional OTP, persists the record, then dispatches delivery
	// best-effort. The actor must be allowed to invite.
	Issue(ctx context.Context, actor *user.User, req IssueRequest) (IssueResponse, error)

	// AcceptByToken is the magic-link entry path (GET). identity is nil for
	// unauthenticated visitors.
	AcceptByToken(ctx context.Context, sess *session.Session, identity *user.User, token string) (AcceptResponse, error)

	// Accept is the form entry path (POST), with token or otp_code+email.
	// Both paths resolve through the same state machine.
	Accept(ctx context.Context, sess *session.Session, identity *user.User, req AcceptRequest) (AcceptResponse, error)
}
