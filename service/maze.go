package service

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

// Maze generates mazes in the supported dimensions and solves submitted grids.
type Maze struct {
	logger       i.Logger
	newGenerator func() *maze.Generator
}

// NewMazeService creates a Maze service. Every generation gets a freshly seeded generator.
func NewMazeService(logger i.Logger) (*Maze, error) {
	if logger == nil {
		return nil, fmt.Errorf("maze service: nil logger")
	}
	return &Maze{
		logger:       logger,
		newGenerator: func() *maze.Generator { return maze.NewGenerator(nil) },
	}, nil
}

// Generate builds a maze. Dimensions outside domain.ValidDimensions fall back to
// domain.DefaultDimension; the dimension used is returned with the grid.
func (m *Maze) Generate(dimension int, algorithm string) ([][]int, int, error) {
	alg, err := maze.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, 0, err
	}

	effective := dimension
	if !domain.IsValidDimension(dimension) {
		effective = domain.DefaultDimension
		m.logger.Warn("Dimension invalid, using default", "requested", dimension, "dimension", effective)
	}

	grid, err := m.newGenerator().GenerateWith(alg, effective)
	if err != nil {
		m.logger.Error("Generating maze", "dimension", effective, "algorithm", alg, "error", err)
		return nil, 0, err
	}

	m.logger.Info("Maze generated", "dimension", effective, "algorithm", alg)
	return grid.Ints(), effective, nil
}

// Solve finds the shortest path through cells from start to goal.
func (m *Maze) Solve(cells [][]int, start, goal maze.Position) ([]maze.Position, bool, error) {
	path, found, err := maze.SolveMaze(cells, start, goal)
	if err != nil {
		m.logger.Warn("Rejected maze for solving", "error", err)
		return nil, false, err
	}

	m.logger.Info("Solver finished", "start", start, "goal", goal, "found", found, "steps", len(path))
	return path, found, nil
}
