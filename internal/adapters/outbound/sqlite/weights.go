package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/abdidvp/matchscore/internal/domain"
)

// LoadWeights implements domain.WeightStore. Only factors an administrator
// has set are returned; callers fill the rest from defaults.
func (s *Store) LoadWeights(ctx context.Context) (domain.WeightConfig, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT factor, weight FROM match_weights`)
	if err != nil {
		return nil, fmt.Errorf("loading weights: %w", err)
	}
	defer rows.Close()

	weights := domain.WeightConfig{}
	for rows.Next() {
		var (
			factor string
			weight float64
		)
		if err := rows.Scan(&factor, &weight); err != nil {
			return nil, fmt.Errorf("scanning weight: %w", err)
		}
		weights[factor] = weight
	}
	return weights, rows.Err()
}

// SetWeight implements domain.WeightStore. Unknown factors and negative
// weights are rejected.
func (s *Store) SetWeight(ctx context.Context, factor string, weight float64) error {
	if err := (domain.WeightConfig{factor: weight}).Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO match_weights (factor, weight, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (factor) DO UPDATE SET weight = excluded.weight, updated_at = excluded.updated_at`,
		factor, weight, formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("setting weight %s: %w", factor, err)
	}
	return nil
}

// ResetWeights implements domain.WeightStore by clearing every override.
func (s *Store) ResetWeights(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM match_weights`); err != nil {
		return fmt.Errorf("resetting weights: %w", err)
	}
	return nil
}
