package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/matchscore/internal/domain"
	"github.com/abdidvp/matchscore/internal/domain/scoring"
)

// MatchService orchestrates scoring against the external stores:
// fetch engineer/job → resolve weights → score → (optionally) stamp an application.
type MatchService struct {
	engineers    domain.EngineerStore
	jobs         domain.JobStore
	applications domain.ApplicationStore
	weights      *WeightResolver
	logger       *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewMatchService(
	engineers domain.EngineerStore,
	jobs domain.JobStore,
	applications domain.ApplicationStore,
	weights *WeightResolver,
	logger *zap.Logger,
) *MatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{
		engineers:    engineers,
		jobs:         jobs,
		applications: applications,
		weights:      weights,
		logger:       logger,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
	}
}

// ScoreOptions selects the weight regime for a call. Empty uses the default.
type ScoreOptions struct {
	Regime string
}

// RankOptions controls batch ranking. Limit <= 0 returns every match.
type RankOptions struct {
	Regime string
	Limit  int
}

// ScorePair computes the match score for one engineer/job pair.
func (s *MatchService) ScorePair(ctx context.Context, engineerID, jobID string, opts ScoreOptions) (*domain.MatchScore, error) {
	eng, err := s.engineers.GetEngineer(ctx, engineerID)
	if err != nil {
		return nil, fmt.Errorf("loading engineer %s: %w", engineerID, err)
	}
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("loading job %s: %w", jobID, err)
	}

	weights, regime, err := s.weights.Resolve(ctx, opts.Regime)
	if err != nil {
		return nil, err
	}

	ms := scoring.ComputeMatchScore(*eng, *job, weights)
	ms.Regime = regime
	ms.Timestamp = s.now()
	return &ms, nil
}

// SubmitApplication records a new application stamped with the current score.
func (s *MatchService) SubmitApplication(ctx context.Context, engineerID, jobID string) (*domain.Application, error) {
	ms, err := s.ScorePair(ctx, engineerID, jobID, ScoreOptions{})
	if err != nil {
		return nil, err
	}

	now := s.now()
	app := domain.Application{
		ID:         s.newID(),
		EngineerID: engineerID,
		JobID:      jobID,
		MatchScore: ms.Overall,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.applications.SaveApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("saving application: %w", err)
	}

	s.logger.Info("application submitted",
		zap.String("application_id", app.ID),
		zap.String("engineer_id", engineerID),
		zap.String("job_id", jobID),
		zap.Int("match_score", app.MatchScore),
	)
	return &app, nil
}

// RecomputeApplication re-scores an existing application and overwrites its
// stored score. Safe to repeat; the score is fully derived.
func (s *MatchService) RecomputeApplication(ctx context.Context, applicationID string) (*domain.Application, error) {
	app, err := s.applications.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("loading application %s: %w", applicationID, err)
	}

	ms, err := s.ScorePair(ctx, app.EngineerID, app.JobID, ScoreOptions{})
	if err != nil {
		return nil, err
	}

	previous := app.MatchScore
	app.MatchScore = ms.Overall
	app.UpdatedAt = s.now()
	if err := s.applications.SaveApplication(ctx, *app); err != nil {
		return nil, fmt.Errorf("saving application: %w", err)
	}

	s.logger.Info("application rescored",
		zap.String("application_id", app.ID),
		zap.Int("previous", previous),
		zap.Int("match_score", app.MatchScore),
	)
	return app, nil
}

// RankJobs scores every job for one engineer, best match first.
func (s *MatchService) RankJobs(ctx context.Context, engineerID string, opts RankOptions) ([]domain.RankedMatch, error) {
	eng, err := s.engineers.GetEngineer(ctx, engineerID)
	if err != nil {
		return nil, fmt.Errorf("loading engineer %s: %w", engineerID, err)
	}
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	pairs := make([]pair, len(jobs))
	for i := range jobs {
		pairs[i] = pair{engineer: eng, job: &jobs[i]}
	}
	return s.rank(ctx, pairs, opts)
}

// RankEngineers scores every engineer for one job, best match first.
func (s *MatchService) RankEngineers(ctx context.Context, jobID string, opts RankOptions) ([]domain.RankedMatch, error) {
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("loading job %s: %w", jobID, err)
	}
	engineers, err := s.engineers.ListEngineers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing engineers: %w", err)
	}

	pairs := make([]pair, len(engineers))
	for i := range engineers {
		pairs[i] = pair{engineer: &engineers[i], job: job}
	}
	return s.rank(ctx, pairs, opts)
}

type pair struct {
	engineer *domain.Engineer
	job      *domain.Job
}

// rank scores pairs concurrently. Weights are resolved once per batch;
// a table edit made mid-batch is picked up by the next batch.
func (s *MatchService) rank(ctx context.Context, pairs []pair, opts RankOptions) ([]domain.RankedMatch, error) {
	weights, regime, err := s.weights.Resolve(ctx, opts.Regime)
	if err != nil {
		return nil, err
	}

	limit := s.weights.Config().Concurrency()
	s.logger.Debug("ranking batch", zap.Int("pairs", len(pairs)), zap.Int("concurrency", limit))

	results := make([]domain.RankedMatch, len(pairs))
	now := s.now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range pairs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ms := scoring.ComputeMatchScore(*p.engineer, *p.job, weights)
			ms.Regime = regime
			ms.Timestamp = now
			results[i] = domain.RankedMatch{EngineerID: p.engineer.ID, JobID: p.job.ID, Score: ms}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking: %w", err)
	}

	sortRanked(results)
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}

// sortRanked orders by score descending, then by job and engineer id so
// equal scores rank deterministically.
func sortRanked(results []domain.RankedMatch) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score.Overall != b.Score.Overall {
			return a.Score.Overall > b.Score.Overall
		}
		if a.JobID != b.JobID {
			return a.JobID < b.JobID
		}
		return a.EngineerID < b.EngineerID
	})
}
