package fixture_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/matchscore/internal/adapters/outbound/fixture"
	"github.com/abdidvp/matchscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	engineers []string
	jobs      []string
}

func (r *recorder) UpsertEngineer(_ context.Context, e domain.Engineer) error {
	r.engineers = append(r.engineers, e.ID)
	return nil
}

func (r *recorder) UpsertJob(_ context.Context, j domain.Job) error {
	r.jobs = append(r.jobs, j.ID)
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesTriStateAndOptionalFields(t *testing.T) {
	path := writeFile(t, `
engineers:
  - id: eng-1
    skills:
      - {skill_id: go, level: 5, years: 4}
    desired_min_monthly: 900000
    remote_ok: false
  - id: eng-2
jobs:
  - id: job-1
    requirements:
      - {skill_id: go, weight: 5}
    budget_max_monthly: 1000000
    weekly_hours_min: 20
`)
	f, err := fixture.Load(path)
	require.NoError(t, err)
	require.Len(t, f.Engineers, 2)
	require.Len(t, f.Jobs, 1)

	e := f.Engineers[0]
	require.NotNil(t, e.RemoteOK)
	assert.False(t, *e.RemoteOK)
	require.NotNil(t, e.Skills[0].Years)
	assert.InDelta(t, 4.0, *e.Skills[0].Years, 0.001)
	assert.Nil(t, f.Engineers[1].RemoteOK)

	j := f.Jobs[0]
	assert.Nil(t, j.BudgetMinMonthly)
	require.NotNil(t, j.BudgetMaxMonthly)
	assert.Equal(t, 1_000_000, *j.BudgetMaxMonthly)
}

func TestLoad_RejectsInvalidRecord(t *testing.T) {
	path := writeFile(t, `
jobs:
  - id: job-1
    requirements:
      - {skill_id: go, weight: 9}
`)
	_, err := fixture.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be between 1 and 5")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := fixture.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApply_WritesEveryRecord(t *testing.T) {
	f := &fixture.File{
		Engineers: []domain.Engineer{{ID: "a"}, {ID: "b"}},
		Jobs:      []domain.Job{{ID: "x"}},
	}
	rec := &recorder{}
	require.NoError(t, f.Apply(context.Background(), rec))
	assert.Equal(t, []string{"a", "b"}, rec.engineers)
	assert.Equal(t, []string{"x"}, rec.jobs)
}
