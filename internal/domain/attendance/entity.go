package attendance

import "time"

// AttendanceRecord is one employee's one work day. Original clock times are
// immutable raw events (an approved adjustment replaces them wholesale);
// rounded times and the minute metrics are derived from them.
type AttendanceRecord struct {
	ID                string
	EmployeeID        string
	CompanyID         string
	WorkDate          time.Time
	OriginalCheckIn   *time.Time
	OriginalCheckOut  *time.Time
	RoundedCheckIn    *time.Time
	RoundedCheckOut   *time.Time
	Status            Status
	WorkingMinutes    *int
	LateMinutes       *int
	EarlyLeaveMinutes *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusLate    Status = "LATE"
	StatusAbsent  Status = "ABSENT"
	StatusOnLeave Status = "ON_LEAVE"
)

// BreakRecord is one break session inside an attendance day. BreakNumber is
// assigned sequentially from 1; BreakEnd nil marks the break as still active.
type BreakRecord struct {
	ID                    string
	AttendanceRecordID    string
	BreakNumber           int
	BreakStart            time.Time
	BreakEnd              *time.Time
	ActualBreakMinutes    *int
	EffectiveBreakMinutes *int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Active reports whether the break has not been ended yet.
func (b BreakRecord) Active() bool {
	return b.BreakEnd == nil
}

// DayKey identifies the locking aggregate: one employee's one work date.
func DayKey(employeeID string, workDate time.Time) string {
	return employeeID + "|" + workDate.Format("2006-01-02")
}
