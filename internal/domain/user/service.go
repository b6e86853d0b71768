package user

import "context"

// UserService defines the interface for user management business logic
type UserService interface {
	// List lists the members of the current team
	List(ctx context.Context, teamID string) ([]Response, error)

	// Create creates a user and attaches them to the current team
	Create(ctx context.Context, teamID string, req CreateRequest) (Response, error)

	// Update updates a user's name, role or status
	Update(ctx context.Context, id string, req UpdateRequest) (Response, error)

	// Delete removes a user
	Delete(ctx context.Context, actorID, id string) error

	// SendMagicLinkInvite provisions a pending account if needed and issues a
	// magic-link invitation for the current team
	SendMagicLinkInvite(ctx context.Context, actor *User, teamID string, req MagicLinkInviteRequest) error
}
