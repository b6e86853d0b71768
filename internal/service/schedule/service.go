package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crewlabs/crew-backend-go/internal/domain/notification"
	"github.com/crewlabs/crew-backend-go/internal/domain/schedule"
	"github.com/crewlabs/crew-backend-go/internal/domain/team"
	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/pkg/validator"
)

type scheduleServiceImpl struct {
	scheduleRepo     schedule.ScheduleRepository
	teamRepo         team.TeamRepository
	notificationRepo notification.NotificationRepository
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	teamRepo team.TeamRepository,
	notificationRepo notification.NotificationRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo:     scheduleRepo,
		teamRepo:         teamRepo,
		notificationRepo: notificationRepo,
	}
}

// List implements schedule.ScheduleService.
func (s *scheduleServiceImpl) List(ctx context.Context, actor *user.User, teamID string) ([]schedule.Response, error) {
	// Employees only see their own shifts
	if !actor.CanManageSchedules() {
		return s.MySchedule(ctx, actor.ID, teamID)
	}

	schedules, err := s.scheduleRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return toResponses(schedules), nil
}

// MySchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) MySchedule(ctx context.Context, actorID, teamID string) ([]schedule.Response, error) {
	schedules, err := s.scheduleRepo.ListByUser(ctx, teamID, actorID)
	if err != nil {
		return nil, err
	}
	return toResponses(schedules), nil
}

func toResponses(schedules []schedule.Schedule) []schedule.Response {
	responses := make([]schedule.Response, 0, len(schedules))
	for _, sc := range schedules {
		responses = append(responses, schedule.ToResponse(sc))
	}
	return responses
}

// Create implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Create(ctx context.Context, actor *user.User, teamID string, req schedule.CreateRequest) (schedule.Response, error) {
	if !actor.CanManageSchedules() {
		return schedule.Response{}, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return schedule.Response{}, err
	}
	if err := checkShiftWindow(schedule.ShiftType(req.ShiftType), req.StartTime, req.EndTime); err != nil {
		return schedule.Response{}, err
	}

	isMember, err := s.teamRepo.IsMember(ctx, teamID, req.UserID)
	if err != nil {
		return schedule.Response{}, err
	}
	if !isMember {
		return schedule.Response{}, team.ErrNotMember
	}

	date, _ := validator.IsValidDate(req.Date)

	status := schedule.StatusDraft
	if req.Status != "" {
		status = schedule.Status(req.Status)
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.Schedule{
		TeamID:            teamID,
		UserID:            req.UserID,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		BreakMinutes:      req.BreakMinutes,
		ShiftType:         schedule.ShiftType(req.ShiftType),
		Location:          req.Location,
		Notes:             req.Notes,
		Status:            status,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
	})
	if err != nil {
		return schedule.Response{}, err
	}

	if created.Status == schedule.StatusPublished {
		s.notifyAssignee(ctx, actor, created, "New shift scheduled")
	}

	return schedule.ToResponse(created), nil
}

// Update implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Update(ctx context.Context, actor *user.User, id string, req schedule.UpdateRequest) (schedule.Response, error) {
	if !actor.CanManageSchedules() {
		return schedule.Response{}, user.ErrHRAccessRequired
	}

	if err := req.Validate(); err != nil {
		return schedule.Response{}, err
	}

	sc, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.Response{}, err
	}

	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		sc.Date = date
	}
	if req.StartTime != nil {
		sc.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sc.EndTime = *req.EndTime
	}
	if req.BreakMinutes != nil {
		sc.BreakMinutes = *req.BreakMinutes
	}
	if req.ShiftType != nil {
		sc.ShiftType = schedule.ShiftType(*req.ShiftType)
	}
	if req.Location != nil {
		sc.Location = req.Location
	}
	if req.Notes != nil {
		sc.Notes = req.Notes
	}
	if req.Status != nil {
		sc.Status = schedule.Status(*req.Status)
	}
	if req.IsRecurring != nil {
		sc.IsRecurring = *req.IsRecurring
	}
	if req.RecurrencePattern != nil {
		sc.RecurrencePattern = req.RecurrencePattern
	}

	if err := checkShiftWindow(sc.ShiftType, sc.StartTime, sc.EndTime); err != nil {
		return schedule.Response{}, err
	}

	updated, err := s.scheduleRepo.Update(ctx, sc)
	if err != nil {
		return schedule.Response{}, err
	}

	if updated.Status == schedule.StatusPublished {
		updated.UserName = sc.UserName
		updated.UserEmail = sc.UserEmail
		s.notifyAssignee(ctx, actor, updated, "Shift updated")
	}

	return schedule.ToResponse(updated), nil
}

// Delete implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Delete(ctx context.Context, actor *user.User, id string) error {
	if !actor.CanManageSchedules() {
		return user.ErrHRAccessRequired
	}

	if _, err := s.scheduleRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.scheduleRepo.Delete(ctx, id)
}

// checkShiftWindow rejects shifts that end before they start. Night shifts
// are exempt: they wrap past midnight.
func checkShiftWindow(shiftType schedule.ShiftType, start, end string) error {
	if shiftType == schedule.ShiftNight {
		return nil
	}
	if end <= start {
		return schedule.ErrEndBeforeStart
	}
	return nil
}

func (s *scheduleServiceImpl) notifyAssignee(ctx context.Context, actor *user.User, sc schedule.Schedule, title string) {
	n := notification.Notification{
		TeamID:      sc.TeamID,
		SenderID:    &actor.ID,
		RecipientID: &sc.UserID,
		Type:        notification.TypeScheduleUpdated,
		Title:       title,
		Message: fmt.Sprintf("%s shift on %s from %s to %s",
			sc.ShiftType, sc.Date.Format("2006-01-02"), sc.StartTime, sc.EndTime),
	}
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		slog.Error("Failed to create schedule notification", "schedule_id", sc.ID, "error", err)
	}
}
