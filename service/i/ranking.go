package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
)

// Ranking keeps the fastest scores per maze dimension in a sorted store.
// A dimension is either absent or filled from the repository; Top returns
// nothing for an absent dimension.
type Ranking interface {
	// Add inserts a score into its dimension only when that dimension is filled.
	Add(ctx context.Context, score domain.Score) error

	// Fill replaces the scores of a dimension.
	Fill(ctx context.Context, dimension int, scores []domain.Score) error

	Top(ctx context.Context, dimension int, limit int64) ([]domain.Score, error)
	Clear(ctx context.Context) error
}

// Locker hands out named locks shared between application instances.
type Locker interface {
	// Lock blocks until the named lock is held or ctx is done.
	// The returned function releases the lock.
	Lock(ctx context.Context, name string) (func() error, error)
}
