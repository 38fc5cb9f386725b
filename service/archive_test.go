package service

import (
	"context"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchiver(t *testing.T, cfg ArchiverConfig) *Archiver {
	t.Helper()
	cfg.Logger = logger.NewNop()
	a, err := NewArchiver(cfg)
	require.NoError(t, err)
	a.now = func() time.Time { return time.Date(2026, 5, 4, 0, 30, 0, 0, time.UTC) }
	return a
}

// submitDuringSnapshot stores a score right after the leaderboard is read,
// like a player finishing a run while an archive is in progress.
type submitDuringSnapshot struct {
	*memoryScores
	late domain.Score
}

func (s *submitDuringSnapshot) All(ctx context.Context) ([]domain.Score, error) {
	scores, err := s.memoryScores.All(ctx)
	if err != nil {
		return nil, err
	}
	return scores, s.memoryScores.Save(ctx, &s.late)
}

func TestArchiver(t *testing.T) {
	ctx := context.Background()
	scores := func() *memoryScores {
		return &memoryScores{scores: []domain.Score{{ID: "s1", Name: "a", Time: 3, Dimension: 5}}}
	}

	t.Run("Archives under yesterday", func(t *testing.T) {
		archives, locker := newMemoryArchives(), &countingLocker{}
		a := newTestArchiver(t, ArchiverConfig{Scores: scores(), Archives: archives, Locker: locker})

		archive, err := a.Archive(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2026-05-03", archive.Day)
		assert.Len(t, archive.Scores, 1)
		assert.Contains(t, archives.archives, "2026-05-03")
		assert.Equal(t, 1, locker.locks)
		assert.Equal(t, 1, locker.unlocks)
	})

	t.Run("Second run is skipped", func(t *testing.T) {
		a := newTestArchiver(t, ArchiverConfig{Scores: scores(), Archives: newMemoryArchives()})

		_, err := a.Archive(ctx)
		require.NoError(t, err)
		_, err = a.Archive(ctx)
		assert.ErrorIs(t, err, domain.ErrAlreadyArchived)
	})

	t.Run("Empty leaderboard", func(t *testing.T) {
		a := newTestArchiver(t, ArchiverConfig{Scores: &memoryScores{}, Archives: newMemoryArchives()})
		_, err := a.Archive(ctx)
		assert.ErrorIs(t, err, domain.ErrNothingToArchive)
	})

	t.Run("Reset clears scores and ranking", func(t *testing.T) {
		repo, ranking := scores(), newMemoryRanking()
		a := newTestArchiver(t, ArchiverConfig{Scores: repo, Archives: newMemoryArchives(), Ranking: ranking, Reset: true})

		_, err := a.Archive(ctx)
		require.NoError(t, err)
		assert.Empty(t, repo.scores)
		assert.True(t, ranking.cleared)
	})

	t.Run("Reset keeps scores submitted after the snapshot", func(t *testing.T) {
		repo := &submitDuringSnapshot{
			memoryScores: scores(),
			late:         domain.Score{ID: "late", Name: "late", Time: 9, Dimension: 5},
		}
		a := newTestArchiver(t, ArchiverConfig{Scores: repo, Archives: newMemoryArchives(), Reset: true})

		archive, err := a.Archive(ctx)
		require.NoError(t, err)
		require.Len(t, archive.Scores, 1)
		assert.Equal(t, "s1", archive.Scores[0].ID)
		require.Len(t, repo.scores, 1)
		assert.Equal(t, "late", repo.scores[0].ID)
	})

	t.Run("Lock failure aborts", func(t *testing.T) {
		archives := newMemoryArchives()
		a := newTestArchiver(t, ArchiverConfig{Scores: scores(), Archives: archives, Locker: &countingLocker{err: errBackend}})

		_, err := a.Archive(ctx)
		assert.ErrorIs(t, err, errBackend)
		assert.Empty(t, archives.archives)
	})

	t.Run("Lookup by day", func(t *testing.T) {
		a := newTestArchiver(t, ArchiverConfig{Scores: scores(), Archives: newMemoryArchives()})
		_, err := a.Archive(ctx)
		require.NoError(t, err)

		archive, err := a.ByDay(ctx, "2026-05-03")
		require.NoError(t, err)
		assert.Equal(t, "2026-05-03", archive.Day)

		_, err = a.ByDay(ctx, "2026-05-02")
		assert.ErrorIs(t, err, domain.ErrArchiveNotFound)
		_, err = a.ByDay(ctx, "yesterday")
		assert.ErrorIs(t, err, domain.ErrArchiveNotFound)
	})

	t.Run("Run stops with the context", func(t *testing.T) {
		archives := newMemoryArchives()
		a := newTestArchiver(t, ArchiverConfig{Scores: scores(), Archives: archives})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- a.Run(ctx, 5*time.Millisecond) }()

		assert.Eventually(t, func() bool {
			ok, _ := archives.Exists(context.Background(), "2026-05-03")
			return ok
		}, time.Second, 5*time.Millisecond)
		cancel()
		assert.NoError(t, <-done)
	})

	t.Run("Zero interval disables the schedule", func(t *testing.T) {
		archives := newMemoryArchives()
		a := newTestArchiver(t, ArchiverConfig{Scores: scores(), Archives: archives})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.NoError(t, a.Run(ctx, 0))
		assert.Empty(t, archives.archives)
	})

	t.Run("Constructor requires repositories", func(t *testing.T) {
		_, err := NewArchiver(ArchiverConfig{Logger: logger.NewNop()})
		assert.Error(t, err)
	})
}
