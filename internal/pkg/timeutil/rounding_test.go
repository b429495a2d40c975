package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2026, 3, 2, hour, min, sec, 0, time.UTC)
}

func TestRoundDirections(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		interval  int
		direction RoundingDirection
		want      time.Time
	}{
		{"up snaps to next boundary", at(8, 57, 0), 15, RoundUp, at(9, 0, 0)},
		{"up keeps exact boundary", at(9, 0, 0), 15, RoundUp, at(9, 0, 0)},
		{"up counts seconds", at(9, 0, 30), 15, RoundUp, at(9, 15, 0)},
		{"down snaps to previous boundary", at(8, 57, 0), 15, RoundDown, at(8, 45, 0)},
		{"down keeps exact boundary", at(17, 30, 0), 15, RoundDown, at(17, 30, 0)},
		{"down drops seconds", at(17, 30, 59), 15, RoundDown, at(17, 30, 0)},
		{"nearest rounds down below half", at(9, 7, 0), 15, RoundNearest, at(9, 0, 0)},
		{"nearest rounds up above half", at(9, 8, 0), 15, RoundNearest, at(9, 15, 0)},
		{"nearest tie rounds up", at(9, 7, 30), 15, RoundNearest, at(9, 15, 0)},
		{"one minute grid is identity on whole minutes", at(9, 23, 0), 1, RoundUp, at(9, 23, 0)},
		{"five minute grid", at(9, 33, 0), 5, RoundUp, at(9, 35, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Round(tt.in, tt.interval, tt.direction)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundIsIdempotent(t *testing.T) {
	for _, direction := range []RoundingDirection{RoundUp, RoundDown, RoundNearest} {
		once, err := Round(at(8, 57, 13), 15, direction)
		require.NoError(t, err)
		twice, err := Round(once, 15, direction)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "direction %s", direction)
	}
}

func TestRoundCarriesPastMidnight(t *testing.T) {
	got, err := Round(at(23, 58, 0), 15, RoundUp)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestRoundRejectsInvalidInput(t *testing.T) {
	_, err := Round(at(9, 0, 0), 0, RoundUp)
	assert.ErrorIs(t, err, ErrInvalidRoundingInterval)

	_, err = Round(at(9, 0, 0), -15, RoundUp)
	assert.ErrorIs(t, err, ErrInvalidRoundingInterval)

	_, err = Round(at(9, 0, 0), 15, RoundingDirection("SIDEWAYS"))
	assert.ErrorIs(t, err, ErrInvalidRoundingDirection)
}

func TestMinutesBetween(t *testing.T) {
	assert.Equal(t, 540, MinutesBetween(at(8, 0, 0), at(17, 0, 0)))
	assert.Equal(t, -60, MinutesBetween(at(9, 0, 0), at(8, 0, 0)))
	assert.Equal(t, 0, MinutesBetween(at(9, 0, 0), at(9, 0, 59)))
}
