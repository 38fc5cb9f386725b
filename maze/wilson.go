package maze

// directions lists logical-cell offsets in a fixed order so seeded walks are reproducible.
var directions = []LogicalCell{
	{Row: -1, Col: 0}, // North
	{Row: 1, Col: 0},  // South
	{Row: 0, Col: 1},  // East
	{Row: 0, Col: -1}, // West
}

// wilson grows a uniform spanning tree with loop-erased random walks.
// Each walk starts outside the tree and wanders until it hits the tree; the
// last exit taken from every cell is remembered, which erases loops implicitly.
func (g *Generator) wilson(dimension int) Grid {
	grid := newCarvedGrid(dimension)
	total := dimension * dimension

	inTree := make([]bool, total)
	inTree[g.rng.Intn(total)] = true
	next := make([]int, total)

	for _, start := range g.rng.Perm(total) {
		if inTree[start] {
			continue
		}

		for cell := start; !inTree[cell]; cell = next[cell] {
			next[cell] = g.randomNeighbor(cell, dimension)
		}

		for cell := start; !inTree[cell]; cell = next[cell] {
			inTree[cell] = true
			edge := WallEdge{A: logicalCellAt(cell, dimension), B: logicalCellAt(next[cell], dimension)}
			grid.set(edge.GridPosition(), Passage)
		}
	}

	return grid
}

// randomNeighbor picks a random in-bounds neighbor of the logical cell at index.
func (g *Generator) randomNeighbor(index, dimension int) int {
	cell := logicalCellAt(index, dimension)

	var candidates [4]int
	n := 0
	for _, d := range directions {
		row, col := cell.Row+d.Row, cell.Col+d.Col
		if row >= 0 && row < dimension && col >= 0 && col < dimension {
			candidates[n] = LogicalCell{Row: row, Col: col}.index(dimension)
			n++
		}
	}
	return candidates[g.rng.Intn(n)]
}
