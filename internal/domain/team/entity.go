package team

import "time"

// Team represents a tenant: users belong to many teams, one of which is the
// session's current team.
type Team struct {
	ID          string
	Name        string
	Description *string
	Address     *string
	Phone       *string
	Website     *string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	MemberCount int64
}
