package service

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"

	"github.com/beka-birhanu/vinom-maze/domain"
)

var errBackend = errors.New("backend down")

type memoryScores struct {
	mu     sync.Mutex
	scores []domain.Score
	err    error
}

func (m *memoryScores) Save(_ context.Context, s *domain.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.scores = append(m.scores, *s)
	return nil
}

func (m *memoryScores) All(_ context.Context) ([]domain.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Score(nil), m.scores...), nil
}

func (m *memoryScores) ByDimension(_ context.Context, dimension, limit int) ([]domain.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Score
	for _, s := range m.scores {
		if s.Dimension == dimension {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Time < out[b].Time })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryScores) Delete(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	kept := m.scores[:0]
	for _, s := range m.scores {
		if !slices.Contains(ids, s.ID) {
			kept = append(kept, s)
		}
	}
	m.scores = kept
	return nil
}

type memoryArchives struct {
	mu       sync.Mutex
	archives map[string]*domain.Archive
}

func newMemoryArchives() *memoryArchives {
	return &memoryArchives{archives: map[string]*domain.Archive{}}
}

func (m *memoryArchives) Exists(_ context.Context, day string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.archives[day]
	return ok, nil
}

func (m *memoryArchives) Save(_ context.Context, a *domain.Archive) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.archives[a.Day]; ok {
		return domain.ErrAlreadyArchived
	}
	m.archives[a.Day] = a
	return nil
}

func (m *memoryArchives) ByDay(_ context.Context, day string) (*domain.Archive, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.archives[day]
	if !ok {
		return nil, domain.ErrArchiveNotFound
	}
	return a, nil
}

type memoryRanking struct {
	byDimension map[int][]domain.Score
	err         error
	cleared     bool
}

func newMemoryRanking() *memoryRanking {
	return &memoryRanking{byDimension: map[int][]domain.Score{}}
}

func (m *memoryRanking) Add(_ context.Context, s domain.Score) error {
	if m.err != nil {
		return m.err
	}
	scores, filled := m.byDimension[s.Dimension]
	if !filled {
		return nil
	}
	scores = append(scores, s)
	sort.SliceStable(scores, func(a, b int) bool { return scores[a].Time < scores[b].Time })
	m.byDimension[s.Dimension] = scores
	return nil
}

func (m *memoryRanking) Fill(_ context.Context, dimension int, scores []domain.Score) error {
	if m.err != nil {
		return m.err
	}
	if len(scores) == 0 {
		delete(m.byDimension, dimension)
		return nil
	}
	m.byDimension[dimension] = append([]domain.Score(nil), scores...)
	return nil
}

func (m *memoryRanking) Top(_ context.Context, dimension int, limit int64) ([]domain.Score, error) {
	if m.err != nil {
		return nil, m.err
	}
	scores := m.byDimension[dimension]
	if int64(len(scores)) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

func (m *memoryRanking) Clear(_ context.Context) error {
	m.byDimension = map[int][]domain.Score{}
	m.cleared = true
	return m.err
}

type countingLocker struct {
	locks, unlocks int
	err            error
}

func (c *countingLocker) Lock(_ context.Context, _ string) (func() error, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.locks++
	return func() error {
		c.unlocks++
		return nil
	}, nil
}
