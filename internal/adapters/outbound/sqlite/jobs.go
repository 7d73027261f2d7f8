package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abdidvp/matchscore/internal/domain"
)

// UpsertJob inserts or replaces a job posting and its skill requirements.
// A skill listed twice keeps its last weight.
func (s *Store) UpsertJob(ctx context.Context, j domain.Job) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO jobs (id, title, company_id, budget_min, budget_max, remote_ok, weekly_hours_min, weekly_hours_max)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   title = excluded.title,
		   company_id = excluded.company_id,
		   budget_min = excluded.budget_min,
		   budget_max = excluded.budget_max,
		   remote_ok = excluded.remote_ok,
		   weekly_hours_min = excluded.weekly_hours_min,
		   weekly_hours_max = excluded.weekly_hours_max`,
		j.ID, j.Title, j.CompanyID,
		nullInt(j.BudgetMinMonthly), nullInt(j.BudgetMaxMonthly), nullBool(j.RemoteOK),
		nullFloat(j.WeeklyHoursMin), nullFloat(j.WeeklyHoursMax),
	)
	if err != nil {
		return fmt.Errorf("upserting job %s: %w", j.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM job_skills WHERE job_id = ?`, j.ID); err != nil {
		return fmt.Errorf("clearing requirements for %s: %w", j.ID, err)
	}
	for i, r := range j.Requirements {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO job_skills (job_id, skill_id, weight, position) VALUES (?, ?, ?, ?)
			 ON CONFLICT (job_id, skill_id) DO UPDATE SET weight = excluded.weight`,
			j.ID, r.SkillID, r.Weight, i,
		)
		if err != nil {
			return fmt.Errorf("inserting requirement %s for %s: %w", r.SkillID, j.ID, err)
		}
	}

	return tx.Commit()
}

// GetJob implements domain.JobStore.
func (s *Store) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, company_id, budget_min, budget_max, remote_ok, weekly_hours_min, weekly_hours_max
		 FROM jobs WHERE id = ?`, id)

	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job %s: %w", id, err)
	}

	if j.Requirements, err = s.jobRequirements(ctx, id); err != nil {
		return nil, err
	}
	return j, nil
}

// ListJobs implements domain.JobStore. Ordered by id.
func (s *Store) ListJobs(ctx context.Context) ([]domain.Job, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, company_id, budget_min, budget_max, remote_ok, weekly_hours_min, weekly_hours_max
		 FROM jobs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range jobs {
		if jobs[i].Requirements, err = s.jobRequirements(ctx, jobs[i].ID); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

func scanJob(row scanner) (*domain.Job, error) {
	var (
		j                    domain.Job
		budgetMin, budgetMax sql.NullInt64
		remote               sql.NullInt64
		hoursMin, hoursMax   sql.NullFloat64
	)
	if err := row.Scan(&j.ID, &j.Title, &j.CompanyID, &budgetMin, &budgetMax, &remote, &hoursMin, &hoursMax); err != nil {
		return nil, err
	}
	j.BudgetMinMonthly = intFromNull(budgetMin)
	j.BudgetMaxMonthly = intFromNull(budgetMax)
	j.RemoteOK = boolFromNull(remote)
	j.WeeklyHoursMin = floatFromNull(hoursMin)
	j.WeeklyHoursMax = floatFromNull(hoursMax)
	return &j, nil
}

func (s *Store) jobRequirements(ctx context.Context, jobID string) ([]domain.SkillRequirement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT skill_id, weight FROM job_skills WHERE job_id = ? ORDER BY position`, jobID)
	if err != nil {
		return nil, fmt.Errorf("loading requirements for %s: %w", jobID, err)
	}
	defer rows.Close()

	var reqs []domain.SkillRequirement
	for rows.Next() {
		var r domain.SkillRequirement
		if err := rows.Scan(&r.SkillID, &r.Weight); err != nil {
			return nil, fmt.Errorf("scanning requirement: %w", err)
		}
		reqs = append(reqs, r)
	}
	return reqs, rows.Err()
}
