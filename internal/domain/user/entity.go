package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full team administration, can invite
	RoleHR       Role = "hr"       // Can manage schedules and people records
	RoleEmployee Role = "employee" // Regular member
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleHR),
	string(RoleEmployee),
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusSuspended  Status = "suspended"
	StatusTerminated Status = "terminated"
	StatusPending    Status = "pending" // Invited but has not accepted yet
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusSuspended),
	string(StatusTerminated),
	string(StatusPending),
}

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	Status          Status
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	JoinedAt *time.Time
}

// IsAdmin checks if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanInvite checks if the user may issue team invitations
func (u *User) CanInvite() bool {
	return u.Role == RoleAdmin
}

// CanManageSchedules checks if the user may create or modify shifts
func (u *User) CanManageSchedules() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR
}

// IsPending checks if the user has not completed onboarding
func (u *User) IsPending() bool {
	return u.Status == StatusPending
}
