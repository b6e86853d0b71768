package notification

import "github.com/crewlabs/crew-backend-go/internal/pkg/validator"

// CreateRequest - POST /notifications. Empty RecipientIDs broadcasts to the
// whole team.
type CreateRequest struct {
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	Type         string   `json:"type"`
	RecipientIDs []string `json:"recipient_ids"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is not a known notification type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkRequest - POST /notifications/bulk-read and bulk-unread
type BulkRequest struct {
	IDs []string `json:"ids"`
}

func (r *BulkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "ids must contain at least one notification id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID        string  `json:"id"`
	SenderID  *string `json:"sender_id,omitempty"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Broadcast bool    `json:"broadcast"`
	IsRead    bool    `json:"is_read"`
	ReadAt    *string `json:"read_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type FeedResponse struct {
	Notifications []Response `json:"notifications"`
	UnreadCount   int64      `json:"unread_count"`
}

func ToResponse(n Notification) Response {
	resp := Response{
		ID:        n.ID,
		SenderID:  n.SenderID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Broadcast: n.IsBroadcast(),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if n.ReadAt != nil {
		readAt := n.ReadAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ReadAt = &readAt
	}
	return resp
}
