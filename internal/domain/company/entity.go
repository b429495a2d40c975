package company

import (
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/timeutil"
)

// AttendanceConfig is the per-company attendance policy: how raw clock events
// are rounded, how much tolerance applies around scheduled times, how many
// breaks a day may hold and which legal break bands apply.
type AttendanceConfig struct {
	CompanyID               string
	RoundingIntervalMinutes int
	CheckInRounding         timeutil.RoundingDirection
	CheckOutRounding        timeutil.RoundingDirection
	LateGraceMinutes        int
	EarlyLeaveGraceMinutes  int
	MaxBreaksPerDay         int
	BreakPolicy             []BreakPolicyBand
}

// BreakPolicyBand maps a worked-minutes range to the legally required minimum
// and the maximum creditable break. MaxWorkedMinutes nil means open-ended.
type BreakPolicyBand struct {
	MinWorkedMinutes        int
	MaxWorkedMinutes        *int
	MinRequiredBreakMinutes int
	MaxCreditedBreakMinutes int
}
