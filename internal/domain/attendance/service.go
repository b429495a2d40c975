package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance and break tracking.
type AttendanceService interface {
	// CheckIn records the first clock-in of the day and creates the record.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the open record and computes the day's metrics.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// StartBreak opens a new break session on the attendance record.
	StartBreak(ctx context.Context, req StartBreakRequest) (BreakResponse, error)

	// EndBreak closes the active break and credits its effective minutes.
	EndBreak(ctx context.Context, req EndBreakRequest) (BreakResponse, error)

	// GetAttendanceForDate returns the record snapshot with its breaks.
	GetAttendanceForDate(ctx context.Context, employeeID string, companyID string, date time.Time) (AttendanceResponse, error)
}

// Rewriter applies approved corrections to stored records and recomputes the
// derived metrics. Callers must hold the attendance day lock.
type Rewriter interface {
	// ApplyCheckTimes replaces the original clock times that are non-nil,
	// re-rounds them and recomputes the day's metrics.
	ApplyCheckTimes(ctx context.Context, attendanceRecordID string, companyID string, checkIn *time.Time, checkOut *time.Time) (AttendanceRecord, error)

	// ApplyBreakTimes rewrites one break's interval after overlap validation
	// and recomputes its minutes plus the parent record's metrics.
	ApplyBreakTimes(ctx context.Context, breakRecordID string, companyID string, start *time.Time, end *time.Time) (BreakRecord, error)
}
