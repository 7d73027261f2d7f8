package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abdidvp/matchscore/internal/domain"
)

// SaveApplication implements domain.ApplicationStore. The write is an upsert
// keyed by id: the last writer's score and updated_at win, created_at is kept.
func (s *Store) SaveApplication(ctx context.Context, app domain.Application) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO applications (id, engineer_id, job_id, match_score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   match_score = excluded.match_score,
		   updated_at = excluded.updated_at`,
		app.ID, app.EngineerID, app.JobID, app.MatchScore,
		formatTime(app.CreatedAt), formatTime(app.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving application %s: %w", app.ID, err)
	}
	return nil
}

// GetApplication implements domain.ApplicationStore.
func (s *Store) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	var (
		app                  domain.Application
		createdAt, updatedAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, engineer_id, job_id, match_score, created_at, updated_at
		 FROM applications WHERE id = ?`, id,
	).Scan(&app.ID, &app.EngineerID, &app.JobID, &app.MatchScore, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("getting application %s: %w", id, err)
	}

	if app.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if app.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &app, nil
}
