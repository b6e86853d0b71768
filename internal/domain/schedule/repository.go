package schedule

import "context"

// ScheduleRepository defines the interface for schedule data access
type ScheduleRepository interface {
	// Create creates a new shift record
	Create(ctx context.Context, s Schedule) (Schedule, error)

	// GetByID retrieves a shift by id
	GetByID(ctx context.Context, id string) (Schedule, error)

	// ListByTeam lists all shifts for a team, ordered by date then start time
	ListByTeam(ctx context.Context, teamID string) ([]Schedule, error)

	// ListByUser lists a single member's shifts within the team
	ListByUser(ctx context.Context, teamID, userID string) ([]Schedule, error)

	// Update persists shift changes
	Update(ctx context.Context, s Schedule) (Schedule, error)

	// Delete removes a shift
	Delete(ctx context.Context, id string) error
}
