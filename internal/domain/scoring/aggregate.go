package scoring

import (
	"math"

	"github.com/abdidvp/matchscore/internal/domain"
)

// Factor pairs a factor key with its scorer's result.
type Factor struct {
	Name   string
	Result domain.FactorResult
}

// Aggregate combines applicable factor scores into a weighted average in
// [0,100]. Inapplicable factors count toward neither the sum nor the weight
// total. Returns domain.NeutralScore when nothing applies or every
// applicable factor carries zero weight.
//
// Weights are scaled by the largest applicable weight before summing, so
// any finite weights give a finite average. Negative and non-finite weights
// count as zero.
func Aggregate(factors []Factor, weights domain.WeightConfig) int {
	var largest float64
	for _, f := range factors {
		if f.Result.IsApplicable() {
			largest = max(largest, usableWeight(weights.Weight(f.Name)))
		}
	}
	if largest == 0 {
		return domain.NeutralScore
	}

	var totalWeighted, totalWeight float64
	for _, f := range factors {
		score, ok := f.Result.Score()
		if !ok {
			continue
		}
		w := usableWeight(weights.Weight(f.Name)) / largest
		totalWeighted += clampScore(score) * w
		totalWeight += w
	}

	avg := totalWeighted / totalWeight
	if math.IsNaN(avg) {
		return domain.NeutralScore
	}
	return int(math.Round(clampScore(avg)))
}

func usableWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	return w
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

func roundScore(v float64) float64 {
	return math.Round(v)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
