package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/abdidvp/matchscore/internal/adapters/outbound/config"
	"github.com/abdidvp/matchscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.FileName), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEngineConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
weights:
  skill_overlap: 2.0
  remote_fit: 0
regimes:
  budget-heavy:
    budget_fit: 3
default_regime: budget-heavy
weight_table: false
rank_concurrency: 4
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, cfg.Weights[domain.FactorSkillOverlap], 0.001)
	assert.InDelta(t, 0.0, cfg.Weights[domain.FactorRemoteFit], 0.001)
	assert.InDelta(t, 3.0, cfg.Regimes["budget-heavy"][domain.FactorBudgetFit], 0.001)
	assert.Equal(t, "budget-heavy", cfg.DefaultRegime)
	assert.False(t, cfg.UsesWeightTable())
	assert.Equal(t, 4, cfg.Concurrency())
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .matchscore.yaml")
}

func TestYAMLLoader_UnknownFactorRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
weights:
  salary: 1
`)
	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .matchscore.yaml")
	assert.Contains(t, err.Error(), "salary")
}

func TestYAMLLoader_NegativeWeightRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
weights:
  budget_fit: -1
`)
	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be >= 0")
}

func TestYAMLLoader_UndefinedDefaultRegimeRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `default_regime: ghost`)
	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_regime")
}

func TestYAMLLoader_NonFiniteWeightRejected(t *testing.T) {
	for _, value := range []string{".inf", "-.inf", ".nan"} {
		dir := t.TempDir()
		writeConfig(t, dir, "weights:\n  skill_overlap: "+value+"\n")
		_, err := appconfig.New().Load(dir)
		require.Error(t, err, value)
		assert.Contains(t, err.Error(), "must be a finite number")
	}
}

func TestYAMLLoader_NonFiniteRegimeWeightRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
regimes:
  wild:
    budget_fit: .inf
`)
	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `regime "wild"`)
}

func TestYAMLLoader_LargeFiniteWeightAccepted(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "weights:\n  skill_overlap: 1e308\n")
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1e308, cfg.Weights[domain.FactorSkillOverlap])
}
