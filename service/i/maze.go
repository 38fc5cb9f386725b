package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// MazeService generates and solves mazes for the HTTP layer.
type MazeService interface {
	// Generate returns a maze grid and the dimension actually used.
	Generate(dimension int, algorithm string) ([][]int, int, error)

	// Solve returns the shortest path and whether one exists.
	Solve(cells [][]int, start, goal maze.Position) ([]maze.Position, bool, error)
}

// Leaderboard records and lists player scores.
type Leaderboard interface {
	AddScore(ctx context.Context, name string, time float64, dimension int) (*domain.Score, error)
	Scores(ctx context.Context) ([]domain.Score, error)
	Top(ctx context.Context, dimension int, limit int) ([]domain.Score, error)
}

// Archiver snapshots the leaderboard.
type Archiver interface {
	Archive(ctx context.Context) (*domain.Archive, error)
	ByDay(ctx context.Context, day string) (*domain.Archive, error)
}
