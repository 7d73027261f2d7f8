package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/abdidvp/matchscore/internal/domain"
)

// WeightResolver produces the WeightConfig for a single scoring call:
// built-in defaults, then config weights, then the admin weight table,
// then the requested regime. Nothing is cached between calls, so table
// edits are observed on the next call.
type WeightResolver struct {
	cfg    domain.EngineConfig
	table  domain.WeightStore
	logger *zap.Logger
}

// NewWeightResolver creates a resolver. table may be nil, in which case only
// config weights apply.
func NewWeightResolver(cfg domain.EngineConfig, table domain.WeightStore, logger *zap.Logger) *WeightResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeightResolver{cfg: cfg, table: table, logger: logger}
}

// Config returns the engine configuration the resolver was built with.
func (r *WeightResolver) Config() domain.EngineConfig { return r.cfg }

// Resolve returns the weights to use for one call and the regime name they
// came from. An empty regime selects the configured default regime.
func (r *WeightResolver) Resolve(ctx context.Context, regime string) (domain.WeightConfig, string, error) {
	weights := domain.DefaultWeights().Merge(r.cfg.Weights)

	if r.table != nil && r.cfg.UsesWeightTable() {
		weights = weights.Merge(r.loadTable(ctx))
	}

	weights, regime, err := r.cfg.WithRegime(weights, regime)
	if err != nil {
		return nil, "", err
	}

	weights = weights.Complete()
	r.logger.Debug("resolved weights",
		zap.String("regime", regime),
		zap.Any("weights", weights),
	)
	return weights, regime, nil
}

// loadTable reads the admin table. A failed or invalid read falls back to
// config weights: scores are a ranking signal and must not fail on it.
func (r *WeightResolver) loadTable(ctx context.Context) domain.WeightConfig {
	table, err := r.table.LoadWeights(ctx)
	if err != nil {
		r.logger.Warn("weight table unavailable, using config weights", zap.Error(err))
		return nil
	}
	if err := table.Validate(); err != nil {
		r.logger.Warn("weight table invalid, using config weights", zap.Error(err))
		return nil
	}
	return table
}
