package schedule

import "time"

type WorkSchedule struct {
	ID                      string
	CompanyID               string
	Name                    string
	Type                    ScheduleType
	StartTime               time.Time // time-of-day, date component ignored
	EndTime                 time.Time // time-of-day, date component ignored
	BreakEntitlementMinutes int
	IsDefault               bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type ScheduleType string

const (
	ScheduleTypeFixed    ScheduleType = "FIXED"
	ScheduleTypeFlexible ScheduleType = "FLEXIBLE"
)

var ScheduleTypeValues = []string{
	string(ScheduleTypeFixed),
	string(ScheduleTypeFlexible),
}

// StartAt anchors the schedule's start time-of-day on the given work date.
func (s WorkSchedule) StartAt(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), 0, 0, date.Location())
}

// EndAt anchors the schedule's end time-of-day on the given work date.
// An end time at or before the start time means the shift crosses midnight.
func (s WorkSchedule) EndAt(date time.Time) time.Time {
	end := time.Date(date.Year(), date.Month(), date.Day(),
		s.EndTime.Hour(), s.EndTime.Minute(), 0, 0, date.Location())
	if !end.After(s.StartAt(date)) {
		end = end.Add(24 * time.Hour)
	}
	return end
}

// ScheduleAssignment binds an employee to a work schedule for an effective
// date range. EffectiveTo nil means open-ended.
type ScheduleAssignment struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	WorkScheduleID string
	EffectiveFrom  time.Time
	EffectiveTo    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Covers reports whether the assignment is effective on date.
func (a ScheduleAssignment) Covers(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	from := time.Date(a.EffectiveFrom.Year(), a.EffectiveFrom.Month(), a.EffectiveFrom.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(from) {
		return false
	}
	if a.EffectiveTo == nil {
		return true
	}
	to := time.Date(a.EffectiveTo.Year(), a.EffectiveTo.Month(), a.EffectiveTo.Day(), 0, 0, 0, 0, time.UTC)
	return !day.After(to)
}
