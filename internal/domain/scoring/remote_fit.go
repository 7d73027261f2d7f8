package scoring

import "github.com/abdidvp/matchscore/internal/domain"

const onSiteMismatchScore = 30

// ScoreRemoteFit compares remote preferences. Both flags are tri-state:
// nil means unset, which is distinct from false.
// Not applicable when the job does not state a preference.
func ScoreRemoteFit(engineerRemoteOK, jobRemoteOK *bool) domain.FactorResult {
	if jobRemoteOK == nil {
		return domain.NotApplicable("job has no remote preference")
	}

	if *jobRemoteOK {
		return domain.Applicable(100).WithDetail("job allows remote")
	}

	if engineerRemoteOK != nil && !*engineerRemoteOK {
		return domain.Applicable(100).WithDetail("both sides on-site")
	}
	return domain.Applicable(onSiteMismatchScore).WithDetail("job requires on-site")
}
