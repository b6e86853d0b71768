package postgresql

import (
	"context"
	"fmt"

	"github.com/crewlabs/crew-backend-go/internal/domain/notification"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

// Create implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (team_id, sender_id, recipient_id, type, title, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, team_id, sender_id, recipient_id, type, title, message,
				  is_read, read_at, created_at
	`

	var created notification.Notification
	err := q.QueryRow(ctx, query,
		n.TeamID, n.SenderID, n.RecipientID, n.Type, n.Title, n.Message,
	).Scan(
		&created.ID, &created.TeamID, &created.SenderID, &created.RecipientID,
		&created.Type, &created.Title, &created.Message,
		&created.IsRead, &created.ReadAt, &created.CreatedAt,
	)
	if err != nil {
		return notification.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return created, nil
}

// GetByID implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) GetByID(ctx context.Context, id string) (notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, team_id, sender_id, recipient_id, type, title, message,
			   is_read, read_at, created_at
		FROM notifications
		WHERE id = $1
	`

	var n notification.Notification
	err := q.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.TeamID, &n.SenderID, &n.RecipientID, &n.Type, &n.Title,
		&n.Message, &n.IsRead, &n.ReadAt, &n.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return n, notification.ErrNotificationNotFound
		}
		return n, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListForUser implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) ListForUser(ctx context.Context, teamID, userID string) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	// Broadcasts (recipient_id IS NULL) appear in every member's feed
	query := `
		SELECT id, team_id, sender_id, recipient_id, type, title, message,
			   is_read, read_at, created_at
		FROM notifications
		WHERE team_id = $1 AND (recipient_id = $2 OR recipient_id IS NULL)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []notification.Notification{}
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(
			&n.ID, &n.TeamID, &n.SenderID, &n.RecipientID, &n.Type, &n.Title,
			&n.Message, &n.IsRead, &n.ReadAt, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// CountUnread implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, teamID, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE team_id = $1 AND recipient_id = $2 AND is_read = FALSE
	`

	var count int64
	if err := q.QueryRow(ctx, query, teamID, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// SetRead implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) SetRead(ctx context.Context, id string, read bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = $2,
			read_at = CASE WHEN $2 THEN NOW() ELSE NULL END
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, id, read)
	if err != nil {
		return fmt.Errorf("failed to update notification read state: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

// SetReadBulk implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) SetReadBulk(ctx context.Context, userID string, ids []string, read bool) error {
	q := GetQuerier(ctx, r.db)

	// Scoped to the recipient so one user cannot flip another's entries
	query := `
		UPDATE notifications
		SET is_read = $3,
			read_at = CASE WHEN $3 THEN NOW() ELSE NULL END
		WHERE recipient_id = $1 AND id = ANY($2)
	`

	if _, err := q.Exec(ctx, query, userID, ids, read); err != nil {
		return fmt.Errorf("failed to bulk update notification read state: %w", err)
	}

	return nil
}

// MarkAllRead implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) MarkAllRead(ctx context.Context, teamID, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE team_id = $1 AND recipient_id = $2 AND is_read = FALSE
	`

	if _, err := q.Exec(ctx, query, teamID, userID); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	return nil
}
