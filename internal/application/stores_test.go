package application_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/abdidvp/matchscore/internal/domain"
)

// memStore is an in-memory implementation of every store port.
type memStore struct {
	mu           sync.Mutex
	engineers    map[string]domain.Engineer
	jobs         map[string]domain.Job
	weights      domain.WeightConfig
	weightsErr   error
	applications map[string]domain.Application
	weightReads  int
}

func newMemStore() *memStore {
	return &memStore{
		engineers:    make(map[string]domain.Engineer),
		jobs:         make(map[string]domain.Job),
		weights:      domain.WeightConfig{},
		applications: make(map[string]domain.Application),
	}
}

func (m *memStore) GetEngineer(_ context.Context, id string) (*domain.Engineer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.engineers[id]
	if !ok {
		return nil, domain.ErrEngineerNotFound
	}
	return &e, nil
}

func (m *memStore) ListEngineers(_ context.Context) ([]domain.Engineer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Engineer
	for _, e := range m.engineers {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetJob(_ context.Context, id string) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return &j, nil
}

func (m *memStore) ListJobs(_ context.Context) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Job
	for _, j := range m.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) LoadWeights(_ context.Context) (domain.WeightConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.weightReads++
	if m.weightsErr != nil {
		return nil, m.weightsErr
	}
	out := domain.WeightConfig{}
	for k, v := range m.weights {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) SetWeight(_ context.Context, factor string, weight float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.weights[factor] = weight
	return nil
}

func (m *memStore) ResetWeights(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.weights = domain.WeightConfig{}
	return nil
}

func (m *memStore) SaveApplication(_ context.Context, app domain.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applications[app.ID] = app
	return nil
}

func (m *memStore) GetApplication(_ context.Context, id string) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.applications[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return &a, nil
}

var errTableDown = errors.New("weight table down")
