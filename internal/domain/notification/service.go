package notification

import "context"

// NotificationService defines the interface for the notification feed
type NotificationService interface {
	// Feed lists the user's notifications with the unread count
	Feed(ctx context.Context, teamID, userID string) (FeedResponse, error)

	// Create sends a notification to the listed recipients, or broadcasts to
	// the team when no recipients are given
	Create(ctx context.Context, teamID, senderID string, req CreateRequest) ([]Response, error)

	// MarkRead / MarkUnread flip a single notification's read state. Only the
	// recipient may do so.
	MarkRead(ctx context.Context, userID, id string) error
	MarkUnread(ctx context.Context, userID, id string) error

	// MarkAllRead marks the user's whole team feed as read
	MarkAllRead(ctx context.Context, teamID, userID string) error

	// BulkMarkRead / BulkMarkUnread flip several notifications at once
	BulkMarkRead(ctx context.Context, userID string, req BulkRequest) error
	BulkMarkUnread(ctx context.Context, userID string, req BulkRequest) error
}
