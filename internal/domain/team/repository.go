package team

import "context"

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team record
	Create(ctx context.Context, t Team) (Team, error)

	// GetByID retrieves a team by id
	GetByID(ctx context.Context, id string) (Team, error)

	// List lists all teams with member counts (browse page)
	List(ctx context.Context) ([]Team, error)

	// ListByUser lists teams the user is a member of
	ListByUser(ctx context.Context, userID string) ([]Team, error)

	// Update persists team profile changes
	Update(ctx context.Context, t Team) (Team, error)

	// Delete removes a team record
	Delete(ctx context.Context, id string) error

	// AddMember attaches a user to a team. Attaching an existing member is a
	// no-op: the membership row is unique on (team_id, user_id).
	AddMember(ctx context.Context, teamID, userID string) error

	// IsMember reports whether the user belongs to the team
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
}
