package schedule

import (
	"context"

	"github.com/crewlabs/crew-backend-go/internal/domain/user"
)

// ScheduleService defines the interface for shift calendar business logic
type ScheduleService interface {
	// List lists shifts for the team. Employees only see their own shifts;
	// admin and hr see everyone's.
	List(ctx context.Context, actor *user.User, teamID string) ([]Response, error)

	// MySchedule lists the actor's own shifts
	MySchedule(ctx context.Context, actorID, teamID string) ([]Response, error)

	// Create creates a shift (admin/hr only)
	Create(ctx context.Context, actor *user.User, teamID string, req CreateRequest) (Response, error)

	// Update updates a shift (admin/hr only)
	Update(ctx context.Context, actor *user.User, id string, req UpdateRequest) (Response, error)

	// Delete removes a shift (admin/hr only)
	Delete(ctx context.Context, actor *user.User, id string) error
}
