package fixture

import (
	"context"
	"fmt"
	"os"

	"github.com/abdidvp/matchscore/internal/domain"
	"gopkg.in/yaml.v3"
)

// File is a YAML document of engineers and jobs to import.
type File struct {
	Engineers []domain.Engineer `yaml:"engineers"`
	Jobs      []domain.Job      `yaml:"jobs"`
}

// Writer receives imported records.
type Writer interface {
	UpsertEngineer(ctx context.Context, e domain.Engineer) error
	UpsertJob(ctx context.Context, j domain.Job) error
}

// Load reads and validates a fixture file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, e := range f.Engineers {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", path, err)
		}
	}
	for _, j := range f.Jobs {
		if err := j.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", path, err)
		}
	}

	return &f, nil
}

// Apply upserts every record into w, engineers first.
func (f *File) Apply(ctx context.Context, w Writer) error {
	for _, e := range f.Engineers {
		if err := w.UpsertEngineer(ctx, e); err != nil {
			return err
		}
	}
	for _, j := range f.Jobs {
		if err := w.UpsertJob(ctx, j); err != nil {
			return err
		}
	}
	return nil
}
