package user

import "context"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user record
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by its normalized email
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByTeam lists members of a team with their joined_at timestamps
	ListByTeam(ctx context.Context, teamID string) ([]User, error)

	// Update persists name, role and status changes
	Update(ctx context.Context, u User) (User, error)

	// UpdateStatus transitions a user's status
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete removes a user record
	Delete(ctx context.Context, id string) error
}
