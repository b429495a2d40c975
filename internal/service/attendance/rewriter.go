package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/timeutil"
)

// ApplyCheckTimes implements attendance.Rewriter. The caller (the adjustment
// workflow) holds the day lock and the surrounding transaction.
func (a *AttendanceServiceImpl) ApplyCheckTimes(ctx context.Context, attendanceRecordID string, companyID string, checkIn *time.Time, checkOut *time.Time) (attendance.AttendanceRecord, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, attendanceRecordID, companyID)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	if checkIn != nil {
		record.OriginalCheckIn = checkIn
	}
	if checkOut != nil {
		record.OriginalCheckOut = checkOut
	}

	cfg, err := a.SettingsRepository.GetAttendanceConfig(ctx, companyID)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance config: %w", err)
	}

	if record.OriginalCheckIn != nil {
		rounded, err := timeutil.Round(*record.OriginalCheckIn, cfg.RoundingIntervalMinutes, cfg.CheckInRounding)
		if err != nil {
			return attendance.AttendanceRecord{}, err
		}
		record.RoundedCheckIn = &rounded
	}
	if record.OriginalCheckOut != nil {
		rounded, err := timeutil.Round(*record.OriginalCheckOut, cfg.RoundingIntervalMinutes, cfg.CheckOutRounding)
		if err != nil {
			return attendance.AttendanceRecord{}, err
		}
		record.RoundedCheckOut = &rounded
	}

	if record.RoundedCheckIn != nil && record.RoundedCheckOut != nil &&
		record.RoundedCheckOut.Before(*record.RoundedCheckIn) {
		return attendance.AttendanceRecord{}, attendance.ErrCheckOutBeforeIn
	}

	if err := a.recomputeRecordMetrics(ctx, &record, cfg); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return record, nil
}

// ApplyBreakTimes implements attendance.Rewriter. Only the referenced break is
// rewritten; its siblings stay untouched.
func (a *AttendanceServiceImpl) ApplyBreakTimes(ctx context.Context, breakRecordID string, companyID string, start *time.Time, end *time.Time) (attendance.BreakRecord, error) {
	br, err := a.BreakRepository.GetByID(ctx, breakRecordID)
	if err != nil {
		return attendance.BreakRecord{}, err
	}

	record, err := a.AttendanceRepository.GetByID(ctx, br.AttendanceRecordID, companyID)
	if err != nil {
		return attendance.BreakRecord{}, err
	}

	if start != nil {
		br.BreakStart = *start
	}
	if end != nil {
		br.BreakEnd = end
	}

	if br.BreakEnd != nil && br.BreakEnd.Before(br.BreakStart) {
		return attendance.BreakRecord{}, attendance.ErrBreakEndBeforeStart
	}

	breaks, err := a.BreakRepository.ListByAttendanceID(ctx, record.ID)
	if err != nil {
		return attendance.BreakRecord{}, fmt.Errorf("failed to list breaks: %w", err)
	}
	if overlapsExistingBreak(breaks, br.BreakStart, br.BreakEnd, br.ID) {
		return attendance.BreakRecord{}, attendance.ErrOverlappingBreak
	}

	cfg, err := a.SettingsRepository.GetAttendanceConfig(ctx, companyID)
	if err != nil {
		return attendance.BreakRecord{}, fmt.Errorf("failed to get attendance config: %w", err)
	}

	if br.BreakEnd != nil {
		actual := minutesBetweenClamped(br.BreakStart, *br.BreakEnd)
		worked := workedMinutesUntil(record, breaks, br.ID, *br.BreakEnd)
		effective := EffectiveBreakMinutes(actual, worked, cfg.BreakPolicy)
		br.ActualBreakMinutes = &actual
		br.EffectiveBreakMinutes = &effective
	} else {
		br.ActualBreakMinutes = nil
		br.EffectiveBreakMinutes = nil
	}

	if err := a.BreakRepository.Update(ctx, br); err != nil {
		return attendance.BreakRecord{}, fmt.Errorf("failed to update break record: %w", err)
	}

	if err := a.recomputeRecordMetrics(ctx, &record, cfg); err != nil {
		return attendance.BreakRecord{}, err
	}
	if err := a.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.BreakRecord{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return br, nil
}

// recomputeRecordMetrics refreshes the derived metrics from the record's
// current rounded times and stored breaks. A record without a check-out only
// carries lateness.
func (a *AttendanceServiceImpl) recomputeRecordMetrics(ctx context.Context, record *attendance.AttendanceRecord, cfg company.AttendanceConfig) error {
	if record.RoundedCheckIn == nil {
		return nil
	}

	ws, err := a.resolver.Resolve(ctx, record.EmployeeID, record.CompanyID, record.WorkDate)
	if err != nil {
		return err
	}

	if record.RoundedCheckOut == nil {
		late := lateMinutes(*record.RoundedCheckIn, ws.StartAt(record.WorkDate), cfg.LateGraceMinutes)
		record.LateMinutes = &late
		record.Status = statusForLateness(late)
		return nil
	}

	breaks, err := a.BreakRepository.ListByAttendanceID(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("failed to list breaks: %w", err)
	}

	metrics := computeDayMetrics(*record.RoundedCheckIn, *record.RoundedCheckOut, ws, cfg, record.WorkDate, totalEffectiveBreakMinutes(breaks))
	record.WorkingMinutes = &metrics.WorkingMinutes
	record.LateMinutes = &metrics.LateMinutes
	record.EarlyLeaveMinutes = &metrics.EarlyLeaveMinutes
	record.Status = statusForLateness(metrics.LateMinutes)
	return nil
}

func statusForLateness(late int) attendance.Status {
	if late > 0 {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}
