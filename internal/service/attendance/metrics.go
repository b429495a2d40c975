package attendance

import (
	"time"

	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/timeutil"
)

type dayMetrics struct {
	WorkingMinutes    int
	LateMinutes       int
	EarlyLeaveMinutes int
}

// computeDayMetrics derives the day's minute metrics from the rounded clock
// times, the resolved schedule anchored on the work date and the sum of
// effective break minutes.
func computeDayMetrics(roundedIn time.Time, roundedOut time.Time, ws schedule.WorkSchedule, cfg company.AttendanceConfig, workDate time.Time, effectiveBreakMinutes int) dayMetrics {
	working := timeutil.MinutesBetween(roundedIn, roundedOut) - effectiveBreakMinutes
	if working < 0 {
		working = 0
	}

	return dayMetrics{
		WorkingMinutes:    working,
		LateMinutes:       lateMinutes(roundedIn, ws.StartAt(workDate), cfg.LateGraceMinutes),
		EarlyLeaveMinutes: earlyLeaveMinutes(roundedOut, ws.EndAt(workDate), cfg.EarlyLeaveGraceMinutes),
	}
}

// lateMinutes counts from the scheduled start, not from the grace boundary:
// once the grace window is exceeded the whole delay is reported. Confirmed
// payroll rule, do not "fix" to count only minutes beyond grace.
func lateMinutes(roundedIn time.Time, scheduleStart time.Time, graceMinutes int) int {
	graceEnd := scheduleStart.Add(time.Duration(graceMinutes) * time.Minute)
	if !roundedIn.After(graceEnd) {
		return 0
	}
	return timeutil.MinutesBetween(scheduleStart, roundedIn)
}

// earlyLeaveMinutes mirrors lateMinutes at the end of the shift.
func earlyLeaveMinutes(roundedOut time.Time, scheduleEnd time.Time, graceMinutes int) int {
	graceStart := scheduleEnd.Add(-time.Duration(graceMinutes) * time.Minute)
	if !roundedOut.Before(graceStart) {
		return 0
	}
	return timeutil.MinutesBetween(roundedOut, scheduleEnd)
}

// totalEffectiveBreakMinutes sums credited minutes over completed breaks.
func totalEffectiveBreakMinutes(breaks []attendance.BreakRecord) int {
	total := 0
	for _, b := range breaks {
		if b.BreakEnd == nil || b.EffectiveBreakMinutes == nil {
			continue
		}
		total += *b.EffectiveBreakMinutes
	}
	return total
}
