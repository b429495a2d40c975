package timeutil

import (
	"errors"
	"time"
)

// RoundingDirection selects how a timestamp is snapped onto the rounding grid.
type RoundingDirection string

const (
	RoundUp      RoundingDirection = "UP"
	RoundDown    RoundingDirection = "DOWN"
	RoundNearest RoundingDirection = "NEAREST"
)

var RoundingDirectionValues = []string{
	string(RoundUp),
	string(RoundDown),
	string(RoundNearest),
}

var (
	ErrInvalidRoundingInterval  = errors.New("rounding interval must be a positive number of minutes")
	ErrInvalidRoundingDirection = errors.New("rounding direction must be UP, DOWN or NEAREST")
)

// Round snaps t onto a grid of intervalMinutes anchored at local midnight.
// NEAREST ties round up. Seconds below the interval are part of the elapsed
// time, so 08:57:30 rounded UP on a 15 minute grid still yields 09:00:00.
// Rounding past midnight carries into the next day.
func Round(t time.Time, intervalMinutes int, direction RoundingDirection) (time.Time, error) {
	if intervalMinutes <= 0 {
		return time.Time{}, ErrInvalidRoundingInterval
	}

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	elapsed := t.Hour()*3600 + t.Minute()*60 + t.Second()
	interval := intervalMinutes * 60

	var k int
	switch direction {
	case RoundDown:
		k = elapsed / interval
	case RoundUp:
		k = (elapsed + interval - 1) / interval
	case RoundNearest:
		k = (elapsed + interval/2) / interval
	default:
		return time.Time{}, ErrInvalidRoundingDirection
	}

	return midnight.Add(time.Duration(k*interval) * time.Second), nil
}

// MinutesBetween returns the whole minutes from a to b, negative when b is
// before a.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}
