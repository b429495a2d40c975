package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
)

// StartBreak implements attendance.AttendanceService. Break numbers are
// assigned sequentially from 1 under the day lock, so a day's breaks never
// have gaps or duplicates.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context, req attendance.StartBreakRequest) (attendance.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BreakResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, req.AttendanceRecordID, req.CompanyID)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	unlock := a.locks.Lock(attendance.DayKey(record.EmployeeID, record.WorkDate))
	defer unlock()

	// Check-out freezes the day; WorkingMinutes would go stale otherwise.
	if record.OriginalCheckOut != nil {
		return attendance.BreakResponse{}, attendance.ErrAlreadyCheckedOut
	}

	active, err := a.BreakRepository.GetActive(ctx, record.ID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to check active break: %w", err)
	}
	if active != nil {
		return attendance.BreakResponse{}, attendance.ErrActiveBreakExists
	}

	breaks, err := a.BreakRepository.ListByAttendanceID(ctx, record.ID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to list breaks: %w", err)
	}

	cfg, err := a.SettingsRepository.GetAttendanceConfig(ctx, record.CompanyID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to get attendance config: %w", err)
	}
	if len(breaks) >= cfg.MaxBreaksPerDay {
		return attendance.BreakResponse{}, attendance.ErrMaxBreaksExceeded
	}

	now := a.clock.Now()
	if overlapsExistingBreak(breaks, now, nil, "") {
		return attendance.BreakResponse{}, attendance.ErrOverlappingBreak
	}

	created, err := a.BreakRepository.Create(ctx, attendance.BreakRecord{
		AttendanceRecordID: record.ID,
		BreakNumber:        len(breaks) + 1,
		BreakStart:         now,
	})
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to create break record: %w", err)
	}

	return attendance.NewBreakResponse(created), nil
}

// EndBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context, req attendance.EndBreakRequest) (attendance.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BreakResponse{}, err
	}

	br, err := a.BreakRepository.GetByID(ctx, req.BreakRecordID)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, br.AttendanceRecordID, req.CompanyID)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	unlock := a.locks.Lock(attendance.DayKey(record.EmployeeID, record.WorkDate))
	defer unlock()

	// Re-read under the lock; a concurrent end could have won the race.
	br, err = a.BreakRepository.GetByID(ctx, req.BreakRecordID)
	if err != nil {
		return attendance.BreakResponse{}, err
	}
	if br.BreakEnd != nil {
		return attendance.BreakResponse{}, attendance.ErrBreakAlreadyEnded
	}

	cfg, err := a.SettingsRepository.GetAttendanceConfig(ctx, record.CompanyID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to get attendance config: %w", err)
	}

	breaks, err := a.BreakRepository.ListByAttendanceID(ctx, record.ID)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to list breaks: %w", err)
	}

	now := a.clock.Now()
	actual := minutesBetweenClamped(br.BreakStart, now)
	worked := workedMinutesUntil(record, breaks, br.ID, now)
	effective := EffectiveBreakMinutes(actual, worked, cfg.BreakPolicy)

	br.BreakEnd = &now
	br.ActualBreakMinutes = &actual
	br.EffectiveBreakMinutes = &effective

	if err := a.BreakRepository.Update(ctx, br); err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to update break record: %w", err)
	}

	return attendance.NewBreakResponse(br), nil
}

// overlapsExistingBreak reports whether [start, end] intersects any other
// break, skipping excludeID. Touching endpoints do not count as overlap. A nil
// end checks whether start falls inside a completed interval. An active
// sibling counts by its start point: no break may be moved onto an interval
// that contains the start of a break still in progress.
func overlapsExistingBreak(breaks []attendance.BreakRecord, start time.Time, end *time.Time, excludeID string) bool {
	for _, b := range breaks {
		if b.ID == excludeID {
			continue
		}
		if b.BreakEnd == nil {
			if end != nil && !b.BreakStart.Before(start) && b.BreakStart.Before(*end) {
				return true
			}
			continue
		}
		if end == nil {
			if !start.Before(b.BreakStart) && start.Before(*b.BreakEnd) {
				return true
			}
			continue
		}
		if start.Before(*b.BreakEnd) && b.BreakStart.Before(*end) {
			return true
		}
	}
	return false
}

// workedMinutesUntil is the gross minutes from the rounded check-in to t minus
// effective minutes of completed breaks other than excludeBreakID.
func workedMinutesUntil(record attendance.AttendanceRecord, breaks []attendance.BreakRecord, excludeBreakID string, t time.Time) int {
	if record.RoundedCheckIn == nil {
		return 0
	}
	worked := minutesBetweenClamped(*record.RoundedCheckIn, t)
	for _, b := range breaks {
		if b.ID == excludeBreakID || b.BreakEnd == nil || b.EffectiveBreakMinutes == nil {
			continue
		}
		worked -= *b.EffectiveBreakMinutes
	}
	if worked < 0 {
		worked = 0
	}
	return worked
}

func minutesBetweenClamped(a, b time.Time) int {
	m := int(b.Sub(a) / time.Minute)
	if m < 0 {
		return 0
	}
	return m
}
