package postgresql

import (
	"context"
	"fmt"

	"github.com/crewlabs/crew-backend-go/internal/domain/schedule"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

// NewScheduleRepository creates a new schedule repository instance
func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (
			team_id, user_id, date, start_time, end_time, break_minutes,
			shift_type, location, notes, status, is_recurring, recurrence_pattern
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, team_id, user_id, date, start_time::text, end_time::text,
				  break_minutes, shift_type, location, notes, status,
				  is_recurring, recurrence_pattern, created_at, updated_at
	`

	var created schedule.Schedule
	err := q.QueryRow(ctx, query,
		s.TeamID, s.UserID, s.Date, s.StartTime, s.EndTime, s.BreakMinutes,
		s.ShiftType, s.Location, s.Notes, s.Status, s.IsRecurring, s.RecurrencePattern,
	).Scan(
		&created.ID, &created.TeamID, &created.UserID, &created.Date,
		&created.StartTime, &created.EndTime, &created.BreakMinutes,
		&created.ShiftType, &created.Location, &created.Notes, &created.Status,
		&created.IsRecurring, &created.RecurrencePattern,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return created, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.team_id, s.user_id, s.date, s.start_time::text, s.end_time::text,
			   s.break_minutes, s.shift_type, s.location, s.notes, s.status,
			   s.is_recurring, s.recurrence_pattern, s.created_at, s.updated_at,
			   u.name AS user_name, u.email AS user_email
		FROM schedules s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	var sc schedule.Schedule
	err := q.QueryRow(ctx, query, id).Scan(
		&sc.ID, &sc.TeamID, &sc.UserID, &sc.Date, &sc.StartTime, &sc.EndTime,
		&sc.BreakMinutes, &sc.ShiftType, &sc.Location, &sc.Notes, &sc.Status,
		&sc.IsRecurring, &sc.RecurrencePattern, &sc.CreatedAt, &sc.UpdatedAt,
		&sc.UserName, &sc.UserEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sc, schedule.ErrScheduleNotFound
		}
		return sc, fmt.Errorf("failed to get schedule: %w", err)
	}

	return sc, nil
}

// ListByTeam implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListByTeam(ctx context.Context, teamID string) ([]schedule.Schedule, error) {
	query := `
		SELECT s.id, s.team_id, s.user_id, s.date, s.start_time::text, s.end_time::text,
			   s.break_minutes, s.shift_type, s.location, s.notes, s.status,
			   s.is_recurring, s.recurrence_pattern, s.created_at, s.updated_at,
			   u.name AS user_name, u.email AS user_email
		FROM schedules s
		JOIN users u ON u.id = s.user_id
		WHERE s.team_id = $1
		ORDER BY s.date ASC, s.start_time ASC
	`

	return r.scanSchedules(ctx, query, teamID)
}

// ListByUser implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListByUser(ctx context.Context, teamID, userID string) ([]schedule.Schedule, error) {
	query := `
		SELECT s.id, s.team_id, s.user_id, s.date, s.start_time::text, s.end_time::text,
			   s.break_minutes, s.shift_type, s.location, s.notes, s.status,
			   s.is_recurring, s.recurrence_pattern, s.created_at, s.updated_at,
			   u.name AS user_name, u.email AS user_email
		FROM schedules s
		JOIN users u ON u.id = s.user_id
		WHERE s.team_id = $1 AND s.user_id = $2
		ORDER BY s.date ASC, s.start_time ASC
	`

	return r.scanSchedules(ctx, query, teamID, userID)
}

func (r *scheduleRepositoryImpl) scanSchedules(ctx context.Context, query string, args ...interface{}) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	schedules := []schedule.Schedule{}
	for rows.Next() {
		var sc schedule.Schedule
		if err := rows.Scan(
			&sc.ID, &sc.TeamID, &sc.UserID, &sc.Date, &sc.StartTime, &sc.EndTime,
			&sc.BreakMinutes, &sc.ShiftType, &sc.Location, &sc.Notes, &sc.Status,
			&sc.IsRecurring, &sc.RecurrencePattern, &sc.CreatedAt, &sc.UpdatedAt,
			&sc.UserName, &sc.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedules: %w", err)
	}

	return schedules, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET user_id = $2, date = $3, start_time = $4, end_time = $5,
			break_minutes = $6, shift_type = $7, location = $8, notes = $9,
			status = $10, is_recurring = $11, recurrence_pattern = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, team_id, user_id, date, start_time::text, end_time::text,
				  break_minutes, shift_type, location, notes, status,
				  is_recurring, recurrence_pattern, created_at, updated_at
	`

	var updated schedule.Schedule
	err := q.QueryRow(ctx, query,
		s.ID, s.UserID, s.Date, s.StartTime, s.EndTime, s.BreakMinutes,
		s.ShiftType, s.Location, s.Notes, s.Status, s.IsRecurring, s.RecurrencePattern,
	).Scan(
		&updated.ID, &updated.TeamID, &updated.UserID, &updated.Date,
		&updated.StartTime, &updated.EndTime, &updated.BreakMinutes,
		&updated.ShiftType, &updated.Location, &updated.Notes, &updated.Status,
		&updated.IsRecurring, &updated.RecurrencePattern,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return updated, nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if result.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
