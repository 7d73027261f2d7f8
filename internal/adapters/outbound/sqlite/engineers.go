package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abdidvp/matchscore/internal/domain"
)

// UpsertEngineer inserts or replaces an engineer and their skill claims.
func (s *Store) UpsertEngineer(ctx context.Context, e domain.Engineer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO engineers (id, name, desired_min_monthly, remote_ok, availability_hours)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name,
		   desired_min_monthly = excluded.desired_min_monthly,
		   remote_ok = excluded.remote_ok,
		   availability_hours = excluded.availability_hours`,
		e.ID, e.Name, nullInt(e.DesiredMinMonthly), nullBool(e.RemoteOK), nullFloat(e.AvailabilityHoursPerWeek),
	)
	if err != nil {
		return fmt.Errorf("upserting engineer %s: %w", e.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM engineer_skills WHERE engineer_id = ?`, e.ID); err != nil {
		return fmt.Errorf("clearing skills for %s: %w", e.ID, err)
	}
	for _, c := range e.SkillIndex() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO engineer_skills (engineer_id, skill_id, level, years) VALUES (?, ?, ?, ?)`,
			e.ID, c.SkillID, c.Level, nullFloat(c.Years),
		)
		if err != nil {
			return fmt.Errorf("inserting skill %s for %s: %w", c.SkillID, e.ID, err)
		}
	}

	return tx.Commit()
}

// GetEngineer implements domain.EngineerStore.
func (s *Store) GetEngineer(ctx context.Context, id string) (*domain.Engineer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, desired_min_monthly, remote_ok, availability_hours
		 FROM engineers WHERE id = ?`, id)

	e, err := scanEngineer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEngineerNotFound
		}
		return nil, fmt.Errorf("getting engineer %s: %w", id, err)
	}

	if e.Skills, err = s.engineerSkills(ctx, id); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEngineers implements domain.EngineerStore. Ordered by id.
func (s *Store) ListEngineers(ctx context.Context) ([]domain.Engineer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, desired_min_monthly, remote_ok, availability_hours
		 FROM engineers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing engineers: %w", err)
	}
	defer rows.Close()

	var engineers []domain.Engineer
	for rows.Next() {
		e, err := scanEngineer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning engineer: %w", err)
		}
		engineers = append(engineers, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range engineers {
		if engineers[i].Skills, err = s.engineerSkills(ctx, engineers[i].ID); err != nil {
			return nil, err
		}
	}
	return engineers, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEngineer(row scanner) (*domain.Engineer, error) {
	var (
		e       domain.Engineer
		desired sql.NullInt64
		remote  sql.NullInt64
		hours   sql.NullFloat64
	)
	if err := row.Scan(&e.ID, &e.Name, &desired, &remote, &hours); err != nil {
		return nil, err
	}
	e.DesiredMinMonthly = intFromNull(desired)
	e.RemoteOK = boolFromNull(remote)
	e.AvailabilityHoursPerWeek = floatFromNull(hours)
	return &e, nil
}

func (s *Store) engineerSkills(ctx context.Context, engineerID string) ([]domain.SkillClaim, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT skill_id, level, years FROM engineer_skills
		 WHERE engineer_id = ? ORDER BY skill_id`, engineerID)
	if err != nil {
		return nil, fmt.Errorf("loading skills for %s: %w", engineerID, err)
	}
	defer rows.Close()

	var claims []domain.SkillClaim
	for rows.Next() {
		var (
			c     domain.SkillClaim
			years sql.NullFloat64
		)
		if err := rows.Scan(&c.SkillID, &c.Level, &years); err != nil {
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		c.Years = floatFromNull(years)
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
