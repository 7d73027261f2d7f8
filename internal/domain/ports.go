package domain

import "context"

// EngineerStore provides engineer profiles. Returns ErrEngineerNotFound
// when the id is unknown.
type EngineerStore interface {
	GetEngineer(ctx context.Context, id string) (*Engineer, error)
	ListEngineers(ctx context.Context) ([]Engineer, error)
}

// JobStore provides job postings. Returns ErrJobNotFound when the id is unknown.
type JobStore interface {
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
}

// WeightStore is the administrable factor weight table.
type WeightStore interface {
	LoadWeights(ctx context.Context) (WeightConfig, error)
	SetWeight(ctx context.Context, factor string, weight float64) error
	ResetWeights(ctx context.Context) error
}

// ApplicationStore persists applications and their stamped scores.
// SaveApplication is an upsert keyed by ID; concurrent writes are last-write-wins.
type ApplicationStore interface {
	SaveApplication(ctx context.Context, app Application) error
	GetApplication(ctx context.Context, id string) (*Application, error)
}

// ConfigLoader loads engine configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (EngineConfig, error)
}
