package invitation

import "context"

// InvitationRepository defines the interface for invitation data access
type InvitationRepository interface {
	// Create creates a new invitation record. Returns ErrDuplicateToken when
	// the token collides with an existing row.
	Create(ctx context.Context, inv Invitation) (Invitation, error)

	// GetValidByToken retrieves an unexpired, unused invitation by token.
	// Missing, expired and used rows all surface ErrInvitationNotFound.
	GetValidByToken(ctx context.Context, token string) (Invitation, error)

	// GetValidByEmailAndOTP retrieves an unexpired, unused invitation by
	// (otp_code, email). Same collapsed not-found surface as GetValidByToken.
	GetValidByEmailAndOTP(ctx context.Context, email, otp string) (Invitation, error)

	// MarkUsed consumes the invitation. The update is conditional on the row
	// still being valid, which is what makes concurrent acceptance
	// exactly-once: the losing request sees ErrInvitationNotFound.
	MarkUsed(ctx context.Context, id string) error
}
