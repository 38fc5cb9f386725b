package service

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMazeService(t *testing.T) {
	svc, err := NewMazeService(logger.NewNop())
	require.NoError(t, err)

	t.Run("Valid dimension", func(t *testing.T) {
		grid, dimension, err := svc.Generate(7, "")
		require.NoError(t, err)
		assert.Equal(t, 7, dimension)
		assert.Len(t, grid, 15)
	})

	t.Run("Unsupported dimension defaults to five", func(t *testing.T) {
		for _, requested := range []int{0, 4, 1000} {
			grid, dimension, err := svc.Generate(requested, "kruskal")
			require.NoError(t, err)
			assert.Equal(t, 5, dimension)
			assert.Len(t, grid, 11)
		}
	})

	t.Run("Wilson algorithm", func(t *testing.T) {
		grid, _, err := svc.Generate(3, "wilson")
		require.NoError(t, err)
		assert.Len(t, grid, 7)
	})

	t.Run("Unknown algorithm", func(t *testing.T) {
		_, _, err := svc.Generate(3, "prim")
		assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
	})

	t.Run("Solve", func(t *testing.T) {
		path, found, err := svc.Solve([][]int{{0, 0, 0}, {1, 1, 0}, {0, 0, 0}}, maze.Position{}, maze.Position{X: 2, Y: 2})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []maze.Position{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, path)
	})

	t.Run("Solve rejects ragged grids", func(t *testing.T) {
		_, _, err := svc.Solve([][]int{{0, 0}, {0}}, maze.Position{}, maze.Position{})
		assert.ErrorIs(t, err, maze.ErrRaggedGrid)
	})

	t.Run("Solve reports unreachable goals", func(t *testing.T) {
		path, found, err := svc.Solve([][]int{{0, 0}, {0, 0}}, maze.Position{}, maze.Position{X: 5, Y: 5})
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, path)
	})

	t.Run("Nil logger", func(t *testing.T) {
		_, err := NewMazeService(nil)
		assert.Error(t, err)
	})
}
