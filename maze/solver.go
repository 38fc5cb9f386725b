package maze

// neighborOrder fixes BFS expansion as +x, -x, +y, -y, which decides ties
// between equally short paths.
var neighborOrder = []Position{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Solver finds shortest passage-only paths through a grid.
// A Solver holds its own copy of the grid and keeps no state between calls,
// so it may be shared across goroutines.
type Solver struct {
	grid Grid
}

// NewSolver creates a Solver for the grid. The grid must be non-empty and rectangular.
func NewSolver(grid Grid) (*Solver, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return &Solver{grid: grid.Clone()}, nil
}

// Solve returns a shortest path from start to goal and true, or nil and false when
// no path exists. Start or goal out of bounds or on a wall means no path.
// The returned path excludes start and ends with goal; it is empty when start equals goal.
func (s *Solver) Solve(start, goal Position) (Path, bool) {
	if !s.grid.IsPassage(start) || !s.grid.IsPassage(goal) {
		return nil, false
	}
	if start == goal {
		return Path{}, true
	}

	cols := s.grid.Cols()
	index := func(p Position) int { return p.Y*cols + p.X }

	visited := make([]bool, s.grid.Rows()*cols)
	parent := make([]Position, len(visited))
	visited[index(start)] = true

	queue := []Position{start}
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if current == goal {
			return s.trace(parent, index, start, goal), true
		}

		for _, d := range neighborOrder {
			next := Position{X: current.X + d.X, Y: current.Y + d.Y}
			if !s.grid.IsPassage(next) || visited[index(next)] {
				continue
			}
			visited[index(next)] = true
			parent[index(next)] = current
			queue = append(queue, next)
		}
	}

	return nil, false
}

// trace walks parent links back from goal and returns the path in forward order.
func (s *Solver) trace(parent []Position, index func(Position) int, start, goal Position) Path {
	var path Path
	for p := goal; p != start; p = parent[index(p)] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
