package domain

import (
	"fmt"
	"math"
	"sort"
)

// WeightConfig maps factor key to a non-negative weight.
type WeightConfig map[string]float64

// DefaultWeights returns the built-in weight regime. A fresh map is returned
// on every call so callers may modify it freely.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		FactorSkillOverlap:    1.5,
		FactorBudgetFit:       1.0,
		FactorRemoteFit:       0.5,
		FactorAvailabilityFit: 1.0,
	}
}

// Weight returns the configured weight for a factor,
// falling back to the built-in default if not specified.
func (w WeightConfig) Weight(factor string) float64 {
	if v, ok := w[factor]; ok {
		return v
	}
	return DefaultWeights()[factor]
}

// Merge returns a copy of w with every key of override applied on top.
func (w WeightConfig) Merge(override WeightConfig) WeightConfig {
	result := make(WeightConfig, len(ValidFactors))
	for k, v := range w {
		result[k] = v
	}
	for k, v := range override {
		result[k] = v
	}
	return result
}

// Complete returns a copy holding exactly the four factor keys,
// filling missing ones from the defaults.
func (w WeightConfig) Complete() WeightConfig {
	result := make(WeightConfig, len(ValidFactors))
	for _, f := range ValidFactors {
		result[f] = w.Weight(f)
	}
	return result
}

// Validate checks that every key is a known factor and every weight is a
// finite, non-negative number.
func (w WeightConfig) Validate() error {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !isValidFactor(k) {
			return fmt.Errorf("unknown factor %q in weights (valid: skill_overlap, budget_fit, remote_fit, availability_fit)", k)
		}
		if math.IsNaN(w[k]) || math.IsInf(w[k], 0) {
			return fmt.Errorf("weights[%q] = %v (must be a finite number)", k, w[k])
		}
		if w[k] < 0 {
			return fmt.Errorf("weights[%q] = %.2f (must be >= 0)", k, w[k])
		}
	}
	return nil
}

// EngineConfig holds engine configuration loaded from .matchscore.yaml.
type EngineConfig struct {
	Weights         WeightConfig            `yaml:"weights"          json:"weights,omitempty"`
	Regimes         map[string]WeightConfig `yaml:"regimes"          json:"regimes,omitempty"`
	DefaultRegime   string                  `yaml:"default_regime"   json:"default_regime,omitempty"`
	WeightTable     *bool                   `yaml:"weight_table"     json:"weight_table,omitempty"`
	RankConcurrency int                     `yaml:"rank_concurrency" json:"rank_concurrency,omitempty"`
}

// DefaultRankConcurrency bounds concurrent scoring during batch ranking.
const DefaultRankConcurrency = 8

// DefaultEngineConfig returns a zero-value config that changes nothing.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{}
}

// UsesWeightTable reports whether the admin weight table overrides
// config weights at scoring time. Enabled unless explicitly turned off.
func (c EngineConfig) UsesWeightTable() bool {
	return c.WeightTable == nil || *c.WeightTable
}

// Concurrency returns the effective batch ranking concurrency.
func (c EngineConfig) Concurrency() int {
	if c.RankConcurrency > 0 {
		return c.RankConcurrency
	}
	return DefaultRankConcurrency
}

// WithRegime layers the named regime over base and returns the result with
// the regime name actually applied. An empty name selects DefaultRegime; if
// that is empty too, base is returned unchanged.
func (c EngineConfig) WithRegime(base WeightConfig, name string) (WeightConfig, string, error) {
	if name == "" {
		name = c.DefaultRegime
	}
	if name == "" {
		return base, "", nil
	}
	regime, ok := c.Regimes[name]
	if !ok {
		return nil, "", fmt.Errorf("unknown weight regime %q", name)
	}
	return base.Merge(regime), name, nil
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c EngineConfig) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}

	names := make([]string, 0, len(c.Regimes))
	for name := range c.Regimes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("regime names must not be empty")
		}
		if err := c.Regimes[name].Validate(); err != nil {
			return fmt.Errorf("regime %q: %w", name, err)
		}
	}

	if c.DefaultRegime != "" {
		if _, ok := c.Regimes[c.DefaultRegime]; !ok {
			return fmt.Errorf("default_regime %q is not defined in regimes", c.DefaultRegime)
		}
	}

	if c.RankConcurrency < 0 {
		return fmt.Errorf("rank_concurrency must be >= 0 (got %d)", c.RankConcurrency)
	}

	return nil
}
