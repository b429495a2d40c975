package attendance

import (
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
)

// EffectiveBreakMinutes converts an actual break duration into the credited
// duration under the company's legal break policy. The band matching the
// worked minutes clamps the actual duration between its required minimum and
// credited maximum; without a matching band the actual duration passes
// through. The result is never negative.
func EffectiveBreakMinutes(actualMinutes int, workedMinutes int, policy []company.BreakPolicyBand) int {
	if actualMinutes < 0 {
		actualMinutes = 0
	}

	for _, band := range policy {
		if workedMinutes < band.MinWorkedMinutes {
			continue
		}
		if band.MaxWorkedMinutes != nil && workedMinutes >= *band.MaxWorkedMinutes {
			continue
		}

		credited := actualMinutes
		if credited < band.MinRequiredBreakMinutes {
			credited = band.MinRequiredBreakMinutes
		}
		if band.MaxCreditedBreakMinutes > 0 && credited > band.MaxCreditedBreakMinutes {
			credited = band.MaxCreditedBreakMinutes
		}
		return credited
	}

	return actualMinutes
}
