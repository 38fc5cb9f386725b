/*
Package maze generates perfect mazes and finds shortest paths through wall/passage grids.

A maze of dimension d is laid out on a (2d+1) x (2d+1) grid. Odd/odd coordinates hold the
centers of the d x d logical cells and are always passages; every other coordinate is a
wall or a removed wall between two logical cells.

Generation uses randomized Kruskal's algorithm by default, with Wilson's algorithm available
as an alternative. Both yield a spanning tree over the logical cells: every cell reachable,
no loops. Solving runs a breadth-first search over any rectangular grid.
*/
package maze

import (
	"fmt"
	"math/rand"
	"strings"
)

// Algorithm names a maze generation strategy.
type Algorithm string

const (
	Kruskal Algorithm = "kruskal"
	Wilson  Algorithm = "wilson"
)

// ParseAlgorithm maps a name to an Algorithm. An empty name selects Kruskal.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case "", Kruskal:
		return Kruskal, nil
	case Wilson:
		return Wilson, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Generator builds perfect mazes from an injected random source.
// A Generator is not safe for concurrent use; create one per goroutine.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing randomness from rng.
// A nil rng gets a freshly seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = newSource()
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator creates a Generator whose mazes are reproducible for a given seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Generate produces a dimension x dimension perfect maze with a fresh random source.
// It is safe to call from multiple goroutines.
func Generate(dimension int) (Grid, error) {
	return NewGenerator(nil).Generate(dimension)
}

// Generate produces a perfect maze using randomized Kruskal's algorithm.
func (g *Generator) Generate(dimension int) (Grid, error) {
	return g.GenerateWith(Kruskal, dimension)
}

// GenerateWith produces a perfect maze using the given algorithm.
func (g *Generator) GenerateWith(algorithm Algorithm, dimension int) (Grid, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}

	switch algorithm {
	case Kruskal:
		return g.kruskal(dimension), nil
	case Wilson:
		return g.wilson(dimension), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// kruskal cuts shuffled wall edges whenever they join two unconnected cells.
func (g *Generator) kruskal(dimension int) Grid {
	grid := newCarvedGrid(dimension)

	edges := WallEdges(dimension)
	g.rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	// dimension is positive, so the count is never negative.
	ds, _ := NewDisjointSet(dimension * dimension)
	target := dimension*dimension - 1
	cut := 0
	for _, edge := range edges {
		if cut >= target {
			break
		}
		if ds.Union(edge.A.index(dimension), edge.B.index(dimension)) {
			grid.set(edge.GridPosition(), Passage)
			cut++
		}
	}

	return grid
}

// WallEdges lists every candidate edge between orthogonally adjacent logical cells:
// horizontal neighbors first, then vertical ones, 2*d*(d-1) in total.
func WallEdges(dimension int) []WallEdge {
	if dimension <= 0 {
		return nil
	}

	edges := make([]WallEdge, 0, 2*dimension*(dimension-1))
	for row := 0; row < dimension; row++ {
		for col := 0; col < dimension-1; col++ {
			edges = append(edges, WallEdge{
				A: LogicalCell{Row: row, Col: col},
				B: LogicalCell{Row: row, Col: col + 1},
			})
		}
	}
	for row := 0; row < dimension-1; row++ {
		for col := 0; col < dimension; col++ {
			edges = append(edges, WallEdge{
				A: LogicalCell{Row: row, Col: col},
				B: LogicalCell{Row: row + 1, Col: col},
			})
		}
	}
	return edges
}

// newSource seeds a private source from the global one, which is safe for concurrent use.
func newSource() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}
