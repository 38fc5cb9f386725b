package maze

import (
	"fmt"
	"strings"
)

// Cell is the state of a single grid coordinate.
// Its numeric value is the wire representation: 0 for a passage, 1 for a wall.
type Cell uint8

const (
	Passage Cell = 0
	Wall    Cell = 1
)

// String returns a readable name of the cell state.
func (c Cell) String() string {
	if c == Wall {
		return "Wall"
	}
	return "Passage"
}

// Position addresses a grid coordinate. X indexes columns and Y indexes rows,
// so a position reads as grid[Y][X].
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Path is an ordered sequence of positions, excluding the start and including the goal.
type Path []Position

// LogicalCell addresses one unit of the dimension x dimension maze layout.
type LogicalCell struct {
	Row int
	Col int
}

// GridPosition maps the logical cell to its center on the grid.
func (c LogicalCell) GridPosition() Position {
	return Position{X: 2*c.Col + 1, Y: 2*c.Row + 1}
}

func (c LogicalCell) index(dimension int) int {
	return c.Row*dimension + c.Col
}

func logicalCellAt(index, dimension int) LogicalCell {
	return LogicalCell{Row: index / dimension, Col: index % dimension}
}

// WallEdge is a candidate connection between two orthogonally adjacent logical cells.
type WallEdge struct {
	A LogicalCell
	B LogicalCell
}

// GridPosition returns the grid coordinate that separates the two cells of the edge.
func (e WallEdge) GridPosition() Position {
	return Position{X: e.A.Col + e.B.Col + 1, Y: e.A.Row + e.B.Row + 1}
}

// Grid is a rectangular matrix of cells indexed as grid[y][x].
type Grid [][]Cell

// newCarvedGrid returns a (2*dimension+1) square grid of walls with every
// logical-cell center turned into a passage.
func newCarvedGrid(dimension int) Grid {
	size := 2*dimension + 1
	grid := make(Grid, size)
	for y := range grid {
		grid[y] = make([]Cell, size)
		for x := range grid[y] {
			grid[y][x] = Wall
		}
	}

	for row := 0; row < dimension; row++ {
		for col := 0; col < dimension; col++ {
			grid.set(LogicalCell{Row: row, Col: col}.GridPosition(), Passage)
		}
	}
	return grid
}

// FromInts converts a raw 0/1 matrix into a Grid, validating its shape and values.
func FromInts(cells [][]int) (Grid, error) {
	grid := make(Grid, len(cells))
	for y, row := range cells {
		grid[y] = make([]Cell, len(row))
		for x, v := range row {
			switch v {
			case 0:
				grid[y][x] = Passage
			case 1:
				grid[y][x] = Wall
			default:
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrInvalidCell, v, x, y)
			}
		}
	}

	if err := grid.Validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

// Validate reports whether the grid is non-empty and rectangular.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	width := len(g[0])
	for y, row := range g {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
	}
	return nil
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p Position) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

// IsPassage reports whether p is inside the grid and open.
func (g Grid) IsPassage(p Position) bool {
	return g.InBounds(p) && g[p.Y][p.X] == Passage
}

// At returns the cell at p. Out-of-bounds positions read as walls.
func (g Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g[p.Y][p.X]
}

func (g Grid) set(p Position, c Cell) {
	g[p.Y][p.X] = c
}

// PassageCount returns the number of passage cells in the grid.
func (g Grid) PassageCount() int {
	count := 0
	for _, row := range g {
		for _, c := range row {
			if c == Passage {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := make(Grid, len(g))
	for y, row := range g {
		clone[y] = make([]Cell, len(row))
		copy(clone[y], row)
	}
	return clone
}

// Ints returns the row-major 0/1 wire representation of the grid.
func (g Grid) Ints() [][]int {
	out := make([][]int, len(g))
	for y, row := range g {
		out[y] = make([]int, len(row))
		for x, c := range row {
			out[y][x] = int(c)
		}
	}
	return out
}

// String provides a textual representation of the grid, '#' for walls.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, c := range row {
			if c == Wall {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
