package scoring_test

import (
	"testing"

	"github.com/abdidvp/matchscore/internal/domain"
	"github.com/abdidvp/matchscore/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func claims(cs ...domain.SkillClaim) map[string]domain.SkillClaim {
	return domain.Engineer{Skills: cs}.SkillIndex()
}

func TestScoreSkillOverlap_FullLevelIsPerfect(t *testing.T) {
	r := scoring.ScoreSkillOverlap(
		claims(domain.SkillClaim{SkillID: "A", Level: 5}),
		[]domain.SkillRequirement{{SkillID: "A", Weight: 5}},
	)
	score, ok := r.Score()
	assert.True(t, ok)
	assert.Equal(t, 100.0, score)
}

func TestScoreSkillOverlap_UnclaimedAssumesLevelThree(t *testing.T) {
	r := scoring.ScoreSkillOverlap(nil, []domain.SkillRequirement{{SkillID: "A", Weight: 5}})
	score, ok := r.Score()
	assert.True(t, ok)
	assert.Equal(t, 60.0, score)
	assert.Contains(t, r.Detail(), "0/1")
}

func TestScoreSkillOverlap_WeightsRequirements(t *testing.T) {
	// achieved 4*5 + 3*1 = 23 of 30 possible
	r := scoring.ScoreSkillOverlap(
		claims(domain.SkillClaim{SkillID: "go", Level: 4}),
		[]domain.SkillRequirement{{SkillID: "go", Weight: 5}, {SkillID: "k8s", Weight: 1}},
	)
	score, ok := r.Score()
	assert.True(t, ok)
	assert.Equal(t, 77.0, score)
}

func TestScoreSkillOverlap_LowLevelClaimScoresBelowUnclaimed(t *testing.T) {
	r := scoring.ScoreSkillOverlap(
		claims(domain.SkillClaim{SkillID: "A", Level: 1}),
		[]domain.SkillRequirement{{SkillID: "A", Weight: 2}},
	)
	score, _ := r.Score()
	assert.Equal(t, 20.0, score)
}

func TestScoreSkillOverlap_LevelAboveRangeIsClamped(t *testing.T) {
	r := scoring.ScoreSkillOverlap(
		claims(domain.SkillClaim{SkillID: "A", Level: 9}),
		[]domain.SkillRequirement{{SkillID: "A", Weight: 3}},
	)
	score, _ := r.Score()
	assert.Equal(t, 100.0, score)
}

func TestScoreSkillOverlap_NoRequirementsNotApplicable(t *testing.T) {
	r := scoring.ScoreSkillOverlap(claims(domain.SkillClaim{SkillID: "A", Level: 5}), nil)
	assert.False(t, r.IsApplicable())
	assert.NotEmpty(t, r.Detail())
}

func TestScoreSkillOverlap_ZeroWeightRequirementsNotApplicable(t *testing.T) {
	r := scoring.ScoreSkillOverlap(nil, []domain.SkillRequirement{{SkillID: "A", Weight: 0}})
	assert.False(t, r.IsApplicable())
}
