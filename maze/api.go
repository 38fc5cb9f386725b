package maze

// GenerateMaze returns a new dimension x dimension perfect maze as a row-major
// 0/1 matrix, where 0 is a passage and 1 is a wall.
func GenerateMaze(dimension int) ([][]int, error) {
	grid, err := Generate(dimension)
	if err != nil {
		return nil, err
	}
	return grid.Ints(), nil
}

// SolveMaze finds a shortest path through a raw 0/1 matrix.
// The boolean is false when no path exists; the error is non-nil only for invalid grids.
func SolveMaze(cells [][]int, start, goal Position) ([]Position, bool, error) {
	grid, err := FromInts(cells)
	if err != nil {
		return nil, false, err
	}

	solver, err := NewSolver(grid)
	if err != nil {
		return nil, false, err
	}

	path, ok := solver.Solve(start, goal)
	return path, ok, nil
}
