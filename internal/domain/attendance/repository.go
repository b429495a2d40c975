package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Methods
// that address a single record take companyID to keep tenants isolated.
type AttendanceRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
	GetByID(ctx context.Context, id string, companyID string) (AttendanceRecord, error)
	// GetByEmployeeAndDate returns nil when no record exists for the work date.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*AttendanceRecord, error)
	Update(ctx context.Context, record AttendanceRecord) error
}

// BreakRepository defines data access for break records.
type BreakRepository interface {
	Create(ctx context.Context, record BreakRecord) (BreakRecord, error)
	GetByID(ctx context.Context, id string) (BreakRecord, error)
	// ListByAttendanceID returns all breaks of the day ordered by BreakNumber.
	ListByAttendanceID(ctx context.Context, attendanceRecordID string) ([]BreakRecord, error)
	// GetActive returns the break with BreakEnd unset, or nil when none is active.
	GetActive(ctx context.Context, attendanceRecordID string) (*BreakRecord, error)
	Update(ctx context.Context, record BreakRecord) error
}
