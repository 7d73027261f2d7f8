package scoring

import (
	"fmt"

	"github.com/abdidvp/matchscore/internal/domain"
)

// ScoreBudgetFit compares the engineer's desired monthly minimum against the
// job's budget range. Amounts share one currency unit.
//
//   - desired within [min, max]: 100
//   - desired at or below max, no min given: 90
//   - desired below min: 80
//   - desired above max: linear decay, 0 at twice the max
//   - only a min given: 50
//
// Not applicable unless the engineer states a minimum and the job states
// at least one bound.
func ScoreBudgetFit(desiredMin, budgetMin, budgetMax *int) domain.FactorResult {
	if desiredMin == nil {
		return domain.NotApplicable("engineer has no desired compensation")
	}
	if budgetMin == nil && budgetMax == nil {
		return domain.NotApplicable("job has no budget range")
	}

	desired := *desiredMin

	if budgetMax == nil {
		return domain.Applicable(50).
			WithDetail("job budget has no upper bound")
	}

	ceiling := *budgetMax
	if desired <= ceiling {
		switch {
		case budgetMin == nil:
			return domain.Applicable(90).WithDetail("desired within budget ceiling")
		case desired >= *budgetMin:
			return domain.Applicable(100).WithDetail("desired within budget range")
		default:
			return domain.Applicable(80).WithDetail("desired below budget floor")
		}
	}

	if ceiling <= 0 {
		return domain.Applicable(0).WithDetail("job budget ceiling is not positive")
	}

	ratio := float64(desired) / float64(ceiling)
	score := max(0, 100-(ratio-1)*100)
	return domain.Applicable(score).
		WithDetail(fmt.Sprintf("desired exceeds budget ceiling by %.0f%%", (ratio-1)*100))
}
