package team

import "context"

// TeamService defines the interface for team business logic
type TeamService interface {
	// Browse lists all teams with member counts
	Browse(ctx context.Context) ([]Response, error)

	// MyTeams lists teams the user belongs to
	MyTeams(ctx context.Context, userID string) ([]Response, error)

	// Create creates a team and attaches the creator as its first member
	Create(ctx context.Context, creatorID string, req CreateRequest) (Response, error)

	// Get retrieves a single team
	Get(ctx context.Context, id string) (Response, error)

	// Update updates a team profile
	Update(ctx context.Context, id string, req UpdateRequest) (Response, error)

	// Delete removes a team
	Delete(ctx context.Context, id string) error

	// Join attaches the user to the team. Joining a team the user already
	// belongs to returns ErrAlreadyMember.
	Join(ctx context.Context, teamID, userID string) (Response, error)

	// Switch validates membership for the session's current-team change and
	// returns the target team. A nil teamID clears the pointer.
	Switch(ctx context.Context, userID string, teamID *string) (*Response, error)
}
