package invitation

import "errors"

var (
	// ErrInvitationNotFound covers missing, expired and already-used
	// invitations alike so callers cannot probe invitation state.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrEmailMismatch is the one distinguishable acceptance failure: the
	// caller needs to know to switch accounts.
	ErrEmailMismatch = errors.New("this invitation was issued to a different email address")

	ErrInviteNotAllowed = errors.New("only admins can send invitations")
	ErrDuplicateToken   = errors.New("invitation token already exists")
	ErrTokenGeneration  = errors.New("could not generate a unique invitation token")
)
