package domain

// Factor keys. These are the only keys a WeightConfig may carry.
const (
	FactorSkillOverlap    = "skill_overlap"
	FactorBudgetFit       = "budget_fit"
	FactorRemoteFit       = "remote_fit"
	FactorAvailabilityFit = "availability_fit"
)

// ValidFactors enumerates all factor keys in evaluation order.
var ValidFactors = []string{
	FactorSkillOverlap,
	FactorBudgetFit,
	FactorRemoteFit,
	FactorAvailabilityFit,
}

// NeutralScore is the aggregate returned when no factor is applicable.
const NeutralScore = 50

// FactorResult is the outcome of a single factor scorer: either an
// applicable score in [0,100] or not applicable. Construct it with
// Applicable or NotApplicable; the zero value is not applicable.
type FactorResult struct {
	applicable bool
	score      float64
	detail     string
}

// Applicable returns a result that takes part in aggregation.
func Applicable(score float64) FactorResult {
	return FactorResult{applicable: true, score: score}
}

// NotApplicable returns a result excluded from aggregation.
func NotApplicable(reason string) FactorResult {
	return FactorResult{detail: reason}
}

// Score returns the factor score and whether the factor applies.
func (r FactorResult) Score() (float64, bool) {
	return r.score, r.applicable
}

// IsApplicable reports whether the result takes part in aggregation.
func (r FactorResult) IsApplicable() bool { return r.applicable }

// WithDetail attaches a human-readable explanation to the result.
func (r FactorResult) WithDetail(detail string) FactorResult {
	r.detail = detail
	return r
}

// Detail explains the score, or why the factor was excluded.
func (r FactorResult) Detail() string { return r.detail }

func isValidFactor(name string) bool {
	for _, f := range ValidFactors {
		if f == name {
			return true
		}
	}
	return false
}
