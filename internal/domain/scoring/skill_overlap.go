package scoring

import (
	"fmt"

	"github.com/abdidvp/matchscore/internal/domain"
)

const (
	maxSkillLevel = 5
	// assumedSkillLevel is credited for a requirement the engineer does not claim.
	assumedSkillLevel = 3
)

// ScoreSkillOverlap compares an engineer's claimed skills against a job's
// weighted requirements. Each requirement earns level×weight out of
// 5×weight; unclaimed skills are credited at level 3.
// Not applicable when the job lists no requirements.
func ScoreSkillOverlap(claims map[string]domain.SkillClaim, requirements []domain.SkillRequirement) domain.FactorResult {
	if len(requirements) == 0 {
		return domain.NotApplicable("job lists no skill requirements")
	}

	var achieved, possible, matched int
	for _, req := range requirements {
		level := assumedSkillLevel
		if c, ok := claims[req.SkillID]; ok {
			level = clampInt(c.Level, 0, maxSkillLevel)
			matched++
		}
		weight := max(req.Weight, 0)
		achieved += level * weight
		possible += maxSkillLevel * weight
	}

	if possible == 0 {
		return domain.NotApplicable("all skill requirements carry zero weight")
	}

	score := roundScore(float64(achieved) / float64(possible) * 100)
	return domain.Applicable(score).
		WithDetail(fmt.Sprintf("%d/%d required skills claimed", matched, len(requirements)))
}
