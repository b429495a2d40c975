package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// Break lifecycle
	ErrActiveBreakExists   = errors.New("a break is already in progress")
	ErrBreakAlreadyEnded   = errors.New("this break has already been ended")
	ErrMaxBreaksExceeded   = errors.New("maximum number of breaks per day exceeded")
	ErrOverlappingBreak    = errors.New("break interval overlaps an existing break")
	ErrCheckOutBeforeIn    = errors.New("check-out must not be before check-in")
	ErrBreakEndBeforeStart = errors.New("break end must not be before break start")

	// General
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrBreakNotFound      = errors.New("break record not found")
)
