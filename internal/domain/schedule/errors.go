package schedule

import "errors"

var (
	ErrScheduleNotFound      = errors.New("no work schedule found for this employee and date")
	ErrAssignmentNotFound    = errors.New("schedule assignment not found")
	ErrOverlappingAssignment = errors.New("an assignment already covers part of this date range")
)
