package notification

import "context"

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create creates a notification record
	Create(ctx context.Context, n Notification) (Notification, error)

	// GetByID retrieves a notification by id
	GetByID(ctx context.Context, id string) (Notification, error)

	// ListForUser lists a user's feed within the team: direct notifications
	// plus team broadcasts, newest first
	ListForUser(ctx context.Context, teamID, userID string) ([]Notification, error)

	// CountUnread counts unread direct notifications for the user
	CountUnread(ctx context.Context, teamID, userID string) (int64, error)

	// SetRead marks a single notification read or unread
	SetRead(ctx context.Context, id string, read bool) error

	// SetReadBulk marks a set of the user's notifications read or unread
	SetReadBulk(ctx context.Context, userID string, ids []string, read bool) error

	// MarkAllRead marks all of the user's notifications in the team as read
	MarkAllRead(ctx context.Context, teamID, userID string) error
}
