package schedule

import "github.com/crewlabs/crew-backend-go/internal/pkg/validator"

type CreateRequest struct {
	UserID            string  `json:"user_id"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	BreakMinutes      int     `json:"break_minutes"`
	ShiftType         string  `json:"shift_type"`
	Location          *string `json:"location"`
	Notes             *string `json:"notes"`
	Status            string  `json:"status"`
	IsRecurring       bool    `json:"is_recurring"`
	RecurrencePattern *string `json:"recurrence_pattern"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.StartTime) || !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if validator.IsEmpty(r.EndTime) || !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of morning, afternoon, night, full-day",
		})
	}

	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, published, cancelled",
		})
	}

	if r.RecurrencePattern != nil && !validator.IsInSlice(*r.RecurrencePattern, RecurrencePatternValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "recurrence_pattern",
			Message: "recurrence_pattern must be one of daily, weekly, monthly",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	Date              *string `json:"date"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
	BreakMinutes      *int    `json:"break_minutes"`
	ShiftType         *string `json:"shift_type"`
	Location          *string `json:"location"`
	Notes             *string `json:"notes"`
	Status            *string `json:"status"`
	IsRecurring       *bool   `json:"is_recurring"`
	RecurrencePattern *string `json:"recurrence_pattern"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.ShiftType != nil && !validator.IsInSlice(*r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of morning, afternoon, night, full-day",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of draft, published, cancelled",
		})
	}

	if r.RecurrencePattern != nil && !validator.IsInSlice(*r.RecurrencePattern, RecurrencePatternValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "recurrence_pattern",
			Message: "recurrence_pattern must be one of daily, weekly, monthly",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	UserName          string  `json:"user_name,omitempty"`
	UserEmail         string  `json:"user_email,omitempty"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	BreakMinutes      int     `json:"break_minutes"`
	ShiftType         string  `json:"shift_type"`
	Location          *string `json:"location,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	Status            string  `json:"status"`
	IsRecurring       bool    `json:"is_recurring"`
	RecurrencePattern *string `json:"recurrence_pattern,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

func ToResponse(s Schedule) Response {
	return Response{
		ID:                s.ID,
		UserID:            s.UserID,
		UserName:          s.UserName,
		UserEmail:         s.UserEmail,
		Date:              s.Date.Format("2006-01-02"),
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		BreakMinutes:      s.BreakMinutes,
		ShiftType:         string(s.ShiftType),
		Location:          s.Location,
		Notes:             s.Notes,
		Status:            string(s.Status),
		IsRecurring:       s.IsRecurring,
		RecurrencePattern: s.RecurrencePattern,
		CreatedAt:         s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
