package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrEndBeforeStart   = errors.New("end_time must be after start_time")
)
