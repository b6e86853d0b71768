package schedule

import "time"

type ShiftType string

const (
	ShiftMorning   ShiftType = "morning"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftNight     ShiftType = "night"
	ShiftFullDay   ShiftType = "full-day"
)

var ShiftTypeValues = []string{
	string(ShiftMorning),
	string(ShiftAfternoon),
	string(ShiftNight),
	string(ShiftFullDay),
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
)

var StatusValues = []string{
	string(StatusDraft),
	string(StatusPublished),
	string(StatusCancelled),
}

var RecurrencePatternValues = []string{"daily", "weekly", "monthly"}

// Schedule represents a single shift on the team calendar
type Schedule struct {
	ID                string
	TeamID            string
	UserID            string
	Date              time.Time
	StartTime         string // "15:04:05"
	EndTime           string
	BreakMinutes      int
	ShiftType         ShiftType
	Location          *string
	Notes             *string
	Status            Status
	IsRecurring       bool
	RecurrencePattern *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO / Join
	UserName  string
	UserEmail string
}
