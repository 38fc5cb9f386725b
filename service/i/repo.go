package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
)

// ScoreRepo defines the interface for leaderboard persistence operations.
type ScoreRepo interface {
	// Save inserts a new score.
	Save(ctx context.Context, score *domain.Score) error

	// All returns every stored score ordered by time, fastest first.
	All(ctx context.Context) ([]domain.Score, error)

	// ByDimension returns up to limit of the fastest scores for a maze dimension.
	ByDimension(ctx context.Context, dimension int, limit int) ([]domain.Score, error)

	// Delete removes the scores with the given IDs. Unknown IDs are ignored.
	Delete(ctx context.Context, ids []string) error
}

// ArchiveRepo stores daily leaderboard snapshots.
type ArchiveRepo interface {
	// Exists reports whether an archive for the day is already stored.
	Exists(ctx context.Context, day string) (bool, error)

	// Save stores the archive. It returns domain.ErrAlreadyArchived when the day is taken.
	Save(ctx context.Context, archive *domain.Archive) error

	// ByDay returns the archive of a day or domain.ErrArchiveNotFound.
	ByDay(ctx context.Context, day string) (*domain.Archive, error)
}
