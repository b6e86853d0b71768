package notification

import (
	"context"

	"github.com/crewlabs/crew-backend-go/internal/domain/notification"
)

type notificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo notification.NotificationRepository) notification.NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

// Feed implements notification.NotificationService.
func (s *notificationServiceImpl) Feed(ctx context.Context, teamID, userID string) (notification.FeedResponse, error) {
	entries, err := s.notificationRepo.ListForUser(ctx, teamID, userID)
	if err != nil {
		return notification.FeedResponse{}, err
	}

	unread, err := s.notificationRepo.CountUnread(ctx, teamID, userID)
	if err != nil {
		return notification.FeedResponse{}, err
	}

	responses := make([]notification.Response, 0, len(entries))
	for _, n := range entries {
		responses = append(responses, notification.ToResponse(n))
	}

	return notification.FeedResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}

// Create implements notification.NotificationService.
func (s *notificationServiceImpl) Create(ctx context.Context, teamID, senderID string, req notification.CreateRequest) ([]notification.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	base := notification.Notification{
		TeamID:   teamID,
		SenderID: &senderID,
		Type:     notification.NotificationType(req.Type),
		Title:    req.Title,
		Message:  req.Message,
	}

	// No recipients means a single broadcast row visible to the whole team
	if len(req.RecipientIDs) == 0 {
		created, err := s.notificationRepo.Create(ctx, base)
		if err != nil {
			return nil, err
		}
		return []notification.Response{notification.ToResponse(created)}, nil
	}

	responses := make([]notification.Response, 0, len(req.RecipientIDs))
	for _, recipientID := range req.RecipientIDs {
		n := base
		id := recipientID
		n.RecipientID = &id

		created, err := s.notificationRepo.Create(ctx, n)
		if err != nil {
			return nil, err
		}
		responses = append(responses, notification.ToResponse(created))
	}

	return responses, nil
}

// MarkRead implements notification.NotificationService.
func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, id string) error {
	return s.setRead(ctx, userID, id, true)
}

// MarkUnread implements notification.NotificationService.
func (s *notificationServiceImpl) MarkUnread(ctx context.Context, userID, id string) error {
	return s.setRead(ctx, userID, id, false)
}

func (s *notificationServiceImpl) setRead(ctx context.Context, userID, id string, read bool) error {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Broadcast entries carry no per-user read state
	if n.IsBroadcast() || *n.RecipientID != userID {
		return notification.ErrNotRecipient
	}

	return s.notificationRepo.SetRead(ctx, id, read)
}

// MarkAllRead implements notification.NotificationService.
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, teamID, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, teamID, userID)
}

// BulkMarkRead implements notification.NotificationService.
func (s *notificationServiceImpl) BulkMarkRead(ctx context.Context, userID string, req notification.BulkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.notificationRepo.SetReadBulk(ctx, userID, req.IDs, true)
}

// BulkMarkUnread implements notification.NotificationService.
func (s *notificationServiceImpl) BulkMarkUnread(ctx context.Context, userID string, req notification.BulkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.notificationRepo.SetReadBulk(ctx, userID, req.IDs, false)
}
