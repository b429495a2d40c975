package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEndAtCrossesMidnight(t *testing.T) {
	ws := WorkSchedule{
		StartTime: time.Date(0, 1, 1, 22, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 6, 0, 0, 0, time.UTC),
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 22, 0, 0, 0, time.UTC), ws.StartAt(day))
	assert.Equal(t, time.Date(2026, 3, 3, 6, 0, 0, 0, time.UTC), ws.EndAt(day))
}

func TestEndAtSameDay(t *testing.T) {
	ws := WorkSchedule{
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), ws.EndAt(day))
}

func TestAssignmentCovers(t *testing.T) {
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	bounded := ScheduleAssignment{
		EffectiveFrom: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EffectiveTo:   &to,
	}

	assert.True(t, bounded.Covers(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bounded.Covers(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, bounded.Covers(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, bounded.Covers(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))

	open := ScheduleAssignment{EffectiveFrom: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	assert.True(t, open.Covers(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}
