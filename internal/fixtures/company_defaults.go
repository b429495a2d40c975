package fixtures

import (
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/timeutil"
)

func intPtr(i int) *int { return &i }

// DefaultAttendanceConfig is the attendance policy applied to companies that
// have not stored their own. Break bands follow the common statutory pattern:
// no required break under 6h, 45 minutes from 6h, 60 minutes from 8h.
func DefaultAttendanceConfig(companyID string) company.AttendanceConfig {
	return company.AttendanceConfig{
		CompanyID:               companyID,
		RoundingIntervalMinutes: 15,
		CheckInRounding:         timeutil.RoundUp,
		CheckOutRounding:        timeutil.RoundDown,
		LateGraceMinutes:        0,
		EarlyLeaveGraceMinutes:  0,
		MaxBreaksPerDay:         3,
		BreakPolicy: []company.BreakPolicyBand{
			{MinWorkedMinutes: 0, MaxWorkedMinutes: intPtr(360), MinRequiredBreakMinutes: 0, MaxCreditedBreakMinutes: 60},
			{MinWorkedMinutes: 360, MaxWorkedMinutes: intPtr(480), MinRequiredBreakMinutes: 45, MaxCreditedBreakMinutes: 90},
			{MinWorkedMinutes: 480, MaxWorkedMinutes: nil, MinRequiredBreakMinutes: 60, MaxCreditedBreakMinutes: 120},
		},
	}
}
