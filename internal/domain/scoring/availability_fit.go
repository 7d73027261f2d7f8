package scoring

import (
	"fmt"

	"github.com/abdidvp/matchscore/internal/domain"
)

const (
	defaultMaxWeeklyHours = 40
	overAvailableScore    = 80
)

// ScoreAvailabilityFit compares the engineer's weekly hours against the job's
// hour range. A missing minimum is 0 and a missing maximum is 40.
// Not applicable unless the engineer states hours and the job states at
// least one bound.
func ScoreAvailabilityFit(hours, jobMin, jobMax *float64) domain.FactorResult {
	if hours == nil {
		return domain.NotApplicable("engineer has no weekly availability")
	}
	if jobMin == nil && jobMax == nil {
		return domain.NotApplicable("job has no weekly hour range")
	}

	avail := *hours
	minHours := 0.0
	if jobMin != nil {
		minHours = *jobMin
	}
	maxHours := float64(defaultMaxWeeklyHours)
	if jobMax != nil {
		maxHours = *jobMax
	}

	// The in-range check must run first: with minHours == 0 it always
	// matches non-negative availability, which keeps the division below safe.
	switch {
	case avail >= minHours && avail <= maxHours:
		return domain.Applicable(100).
			WithDetail(fmt.Sprintf("%.0fh/week within %.0f-%.0fh", avail, minHours, maxHours))
	case avail > maxHours:
		return domain.Applicable(overAvailableScore).
			WithDetail(fmt.Sprintf("%.0fh/week exceeds %.0fh needed", avail, maxHours))
	case minHours <= 0:
		return domain.Applicable(0).WithDetail("negative availability")
	default:
		return domain.Applicable(max(0, avail/minHours*100)).
			WithDetail(fmt.Sprintf("%.0fh/week below %.0fh minimum", avail, minHours))
	}
}
