package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAnnouncement    NotificationType = "announcement"
	TypeScheduleUpdated NotificationType = "schedule_updated"
	TypeInvitationSent  NotificationType = "invitation_sent"
	TypeMemberJoined    NotificationType = "member_joined"
)

var TypeValues = []string{
	string(TypeAnnouncement),
	string(TypeScheduleUpdated),
	string(TypeInvitationSent),
	string(TypeMemberJoined),
}

// Notification represents a feed entry. A nil RecipientID means the entry is
// broadcast to the whole team.
type Notification struct {
	ID          string
	TeamID      string
	SenderID    *string
	RecipientID *string
	Type        NotificationType
	Title       string
	Message     string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// IsBroadcast reports whether the notification targets the whole team
func (n *Notification) IsBroadcast() bool {
	return n.RecipientID == nil
}
