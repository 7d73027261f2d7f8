package application_test

import (
	"context"
	"math"
	"testing"

	"github.com/abdidvp/matchscore/internal/application"
	"github.com/abdidvp/matchscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightResolver_DefaultsWithoutTable(t *testing.T) {
	r := application.NewWeightResolver(domain.DefaultEngineConfig(), nil, nil)
	w, regime, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, regime)
	assert.Equal(t, domain.DefaultWeights(), w)
}

func TestWeightResolver_TableOverridesConfig(t *testing.T) {
	store := newMemStore()
	store.weights[domain.FactorBudgetFit] = 3
	cfg := domain.EngineConfig{Weights: domain.WeightConfig{domain.FactorBudgetFit: 2, domain.FactorRemoteFit: 0.1}}

	w, _, err := application.NewWeightResolver(cfg, store, nil).Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, w[domain.FactorBudgetFit], 0.001)
	assert.InDelta(t, 0.1, w[domain.FactorRemoteFit], 0.001)
	assert.Len(t, w, 4)
}

func TestWeightResolver_ReadsTableEveryCall(t *testing.T) {
	store := newMemStore()
	r := application.NewWeightResolver(domain.DefaultEngineConfig(), store, nil)
	ctx := context.Background()

	w, _, err := r.Resolve(ctx, "")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, w[domain.FactorRemoteFit], 0.001)

	require.NoError(t, store.SetWeight(ctx, domain.FactorRemoteFit, 4))
	w, _, err = r.Resolve(ctx, "")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, w[domain.FactorRemoteFit], 0.001)
	assert.Equal(t, 2, store.weightReads)
}

func TestWeightResolver_TableDisabled(t *testing.T) {
	store := newMemStore()
	store.weights[domain.FactorRemoteFit] = 9
	off := false
	r := application.NewWeightResolver(domain.EngineConfig{WeightTable: &off}, store, nil)

	w, _, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, w[domain.FactorRemoteFit], 0.001)
	assert.Zero(t, store.weightReads)
}

func TestWeightResolver_TableErrorFallsBack(t *testing.T) {
	store := newMemStore()
	store.weightsErr = errTableDown
	r := application.NewWeightResolver(domain.DefaultEngineConfig(), store, nil)

	w, _, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeights(), w)
}

func TestWeightResolver_InvalidTableIgnored(t *testing.T) {
	store := newMemStore()
	store.weights[domain.FactorRemoteFit] = -2
	r := application.NewWeightResolver(domain.DefaultEngineConfig(), store, nil)

	w, _, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, w[domain.FactorRemoteFit], 0.001)
}

func TestWeightResolver_RegimeLayersOverTable(t *testing.T) {
	store := newMemStore()
	store.weights[domain.FactorSkillOverlap] = 2
	cfg := domain.EngineConfig{
		Regimes: map[string]domain.WeightConfig{"b": {domain.FactorSkillOverlap: 5}},
	}
	r := application.NewWeightResolver(cfg, store, nil)

	w, regime, err := r.Resolve(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "b", regime)
	assert.InDelta(t, 5.0, w[domain.FactorSkillOverlap], 0.001)

	w, _, err = r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w[domain.FactorSkillOverlap], 0.001)
}

func TestWeightResolver_UnknownRegime(t *testing.T) {
	r := application.NewWeightResolver(domain.DefaultEngineConfig(), nil, nil)
	_, _, err := r.Resolve(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown weight regime")
}

func TestWeightResolver_NonFiniteTableIgnored(t *testing.T) {
	store := newMemStore()
	store.weights[domain.FactorSkillOverlap] = math.Inf(1)
	r := application.NewWeightResolver(domain.DefaultEngineConfig(), store, nil)

	w, _, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeights(), w)
}

func TestWeightResolver_DefaultRegimeLayersOverTable(t *testing.T) {
	store := newMemStore()
	store.weights[domain.FactorBudgetFit] = 3
	store.weights[domain.FactorRemoteFit] = 2
	cfg := domain.EngineConfig{
		Regimes:       map[string]domain.WeightConfig{"lean": {domain.FactorRemoteFit: 0}},
		DefaultRegime: "lean",
	}
	r := application.NewWeightResolver(cfg, store, nil)

	w, regime, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "lean", regime)
	assert.InDelta(t, 3.0, w[domain.FactorBudgetFit], 0.001)
	assert.InDelta(t, 0.0, w[domain.FactorRemoteFit], 0.001)
}
