package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

const archiveLockName = "leaderboard:archive_lock"

// ArchiverConfig holds the collaborators of an Archiver.
type ArchiverConfig struct {
	Scores   i.ScoreRepo
	Archives i.ArchiveRepo
	Ranking  i.Ranking // optional, cleared on reset
	Locker   i.Locker  // optional, serializes archivers across instances
	Logger   i.Logger
	Reset    bool // clear the leaderboard after a successful archive
}

// Archiver snapshots the leaderboard under yesterday's date.
type Archiver struct {
	scores   i.ScoreRepo
	archives i.ArchiveRepo
	ranking  i.Ranking
	locker   i.Locker
	logger   i.Logger
	reset    bool
	now      func() time.Time
}

// NewArchiver creates an Archiver.
func NewArchiver(cfg ArchiverConfig) (*Archiver, error) {
	if cfg.Scores == nil || cfg.Archives == nil || cfg.Logger == nil {
		return nil, fmt.Errorf("archiver: scores, archives and logger are required")
	}
	return &Archiver{
		scores:   cfg.Scores,
		archives: cfg.Archives,
		ranking:  cfg.Ranking,
		locker:   cfg.Locker,
		logger:   cfg.Logger,
		reset:    cfg.Reset,
		now:      time.Now,
	}, nil
}

// Archive copies the current leaderboard into an archive named after yesterday's UTC date.
// It returns domain.ErrAlreadyArchived if that day is archived and
// domain.ErrNothingToArchive if the leaderboard is empty.
func (a *Archiver) Archive(ctx context.Context) (*domain.Archive, error) {
	if a.locker != nil {
		unlock, err := a.locker.Lock(ctx, archiveLockName)
		if err != nil {
			return nil, fmt.Errorf("acquiring archive lock: %w", err)
		}
		defer func() {
			if err := unlock(); err != nil {
				a.logger.Warn("Releasing archive lock", "error", err)
			}
		}()
	}

	now := a.now().UTC()
	day := now.AddDate(0, 0, -1).Format(domain.DayLayout)

	exists, err := a.archives.Exists(ctx, day)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyArchived, day)
	}

	scores, err := a.scores.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, domain.ErrNothingToArchive
	}

	archive := &domain.Archive{Day: day, Scores: scores, ArchivedAt: now}
	if err := a.archives.Save(ctx, archive); err != nil {
		return nil, err
	}
	a.logger.Info("Leaderboard archived", "day", day, "scores", len(scores))

	if a.reset {
		// Only archived scores go; anything submitted after the snapshot stays.
		ids := make([]string, len(scores))
		for k, s := range scores {
			ids[k] = s.ID
		}
		if err := a.scores.Delete(ctx, ids); err != nil {
			return archive, fmt.Errorf("resetting leaderboard: %w", err)
		}
		if a.ranking != nil {
			if err := a.ranking.Clear(ctx); err != nil {
				a.logger.Warn("Clearing ranking", "error", err)
			}
		}
		a.logger.Info("Leaderboard reset")
	}

	return archive, nil
}

// ByDay returns a stored archive.
func (a *Archiver) ByDay(ctx context.Context, day string) (*domain.Archive, error) {
	if _, err := time.Parse(domain.DayLayout, day); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrArchiveNotFound, day)
	}
	return a.archives.ByDay(ctx, day)
}

// Run archives on every tick of interval until ctx is done.
// Skipped runs (already archived, empty leaderboard) are logged, not returned.
// A non-positive interval disables the schedule.
func (a *Archiver) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		a.logger.Info("Scheduled archiving disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			_, err := a.Archive(ctx)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrAlreadyArchived), errors.Is(err, domain.ErrNothingToArchive):
				a.logger.Info("Archive skipped", "reason", err)
			default:
				a.logger.Error("Archiving leaderboard", "error", err)
			}
		}
	}
}
