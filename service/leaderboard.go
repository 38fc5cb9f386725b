package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

// Leaderboard stores scores in the repository and mirrors them into the ranking cache.
type Leaderboard struct {
	repo    i.ScoreRepo
	ranking i.Ranking
	logger  i.Logger
	now     func() time.Time
}

// NewLeaderboard creates a Leaderboard. ranking may be nil, in which case every
// query goes to the repository.
func NewLeaderboard(repo i.ScoreRepo, ranking i.Ranking, logger i.Logger) (*Leaderboard, error) {
	if repo == nil || logger == nil {
		return nil, fmt.Errorf("leaderboard: repository and logger are required")
	}
	return &Leaderboard{
		repo:    repo,
		ranking: ranking,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// AddScore validates and stores a new score.
func (l *Leaderboard) AddScore(ctx context.Context, name string, t float64, dimension int) (*domain.Score, error) {
	score, err := domain.NewScore(domain.ScoreConfig{
		Name:      name,
		Time:      t,
		Dimension: dimension,
		At:        l.now(),
	})
	if err != nil {
		return nil, err
	}

	if err := l.repo.Save(ctx, score); err != nil {
		l.logger.Error("Saving score", "error", err)
		return nil, err
	}

	if l.ranking != nil {
		// A cold dimension stays cold; the next Top fills it from the repository.
		if err := l.ranking.Add(ctx, *score); err != nil {
			l.logger.Warn("Caching score in ranking", "error", err)
		}
	}

	l.logger.Info("Score added", "name", score.Name, "time", score.Time, "dimension", score.Dimension)
	return score, nil
}

// Scores returns every score, fastest first.
func (l *Leaderboard) Scores(ctx context.Context) ([]domain.Score, error) {
	scores, err := l.repo.All(ctx)
	if err != nil {
		l.logger.Error("Loading leaderboard", "error", err)
		return nil, err
	}

	sort.SliceStable(scores, func(a, b int) bool { return scores[a].Time < scores[b].Time })
	return scores, nil
}

// Top returns the fastest scores of a dimension. The ranking cache is consulted
// first; on a miss or failure the repository answers and the cache is refilled
// with the fastest maxTopLimit scores, enough to answer any later limit.
func (l *Leaderboard) Top(ctx context.Context, dimension int, limit int) ([]domain.Score, error) {
	if !domain.IsValidDimension(dimension) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidDimension, dimension)
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}
	limit = min(limit, maxTopLimit)

	if l.ranking != nil {
		scores, err := l.ranking.Top(ctx, dimension, int64(limit))
		if err == nil && len(scores) > 0 {
			return scores, nil
		}
		if err != nil {
			l.logger.Warn("Reading ranking, falling back to repository", "dimension", dimension, "error", err)
		}
	}

	scores, err := l.repo.ByDimension(ctx, dimension, maxTopLimit)
	if err != nil {
		l.logger.Error("Loading scores by dimension", "dimension", dimension, "error", err)
		return nil, err
	}

	if l.ranking != nil && len(scores) > 0 {
		if err := l.ranking.Fill(ctx, dimension, scores); err != nil {
			l.logger.Warn("Refilling ranking", "dimension", dimension, "error", err)
		}
	}
	return scores[:min(limit, len(scores))], nil
}
