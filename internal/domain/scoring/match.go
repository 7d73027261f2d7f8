package scoring

import (
	"github.com/abdidvp/matchscore/internal/domain"
)

// ComputeMatchScore scores one engineer/job pair under the given weights.
// It does no I/O and touches no shared state, so callers may invoke it
// concurrently.
// Timestamp is left zero; callers stamp it when recording the result.
func ComputeMatchScore(engineer domain.Engineer, job domain.Job, weights domain.WeightConfig) domain.MatchScore {
	factors := ScoreFactors(engineer, job)

	result := domain.MatchScore{
		EngineerID: engineer.ID,
		JobID:      job.ID,
		Overall:    Aggregate(factors, weights),
		Factors:    make([]domain.FactorScore, 0, len(factors)),
	}

	for _, f := range factors {
		score, ok := f.Result.Score()
		result.Factors = append(result.Factors, domain.FactorScore{
			Name:       f.Name,
			Applicable: ok,
			Score:      score,
			Weight:     weights.Weight(f.Name),
			Detail:     f.Result.Detail(),
		})
	}

	return result
}

// ScoreFactors runs every factor scorer in domain.ValidFactors order.
func ScoreFactors(engineer domain.Engineer, job domain.Job) []Factor {
	return []Factor{
		{Name: domain.FactorSkillOverlap, Result: ScoreSkillOverlap(engineer.SkillIndex(), job.Requirements)},
		{Name: domain.FactorBudgetFit, Result: ScoreBudgetFit(engineer.DesiredMinMonthly, job.BudgetMinMonthly, job.BudgetMaxMonthly)},
		{Name: domain.FactorRemoteFit, Result: ScoreRemoteFit(engineer.RemoteOK, job.RemoteOK)},
		{Name: domain.FactorAvailabilityFit, Result: ScoreAvailabilityFit(engineer.AvailabilityHoursPerWeek, job.WeeklyHoursMin, job.WeeklyHoursMax)},
	}
}
