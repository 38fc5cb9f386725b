package maze

import "fmt"

// DisjointSet tracks a partition of the elements 0..count-1 into disjoint sets.
// It uses path compression and union by rank.
//
// Indices outside 0..count-1 are a programming error and cause a panic.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// NewDisjointSet creates count singleton sets.
func NewDisjointSet(count int) (*DisjointSet, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}

	parent := make([]int, count)
	for i := range parent {
		parent[i] = i
	}
	return &DisjointSet{
		parent: parent,
		rank:   make([]int, count),
		sets:   count,
	}, nil
}

// Find returns the representative of the set containing x.
func (ds *DisjointSet) Find(x int) int {
	ds.mustContain(x)

	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}

	// Point every node on the walked path directly at the root.
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing x and y.
// It returns false without modification if they already share a set.
func (ds *DisjointSet) Union(x, y int) bool {
	rootX := ds.Find(x)
	rootY := ds.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case ds.rank[rootX] < ds.rank[rootY]:
		ds.parent[rootX] = rootY
	case ds.rank[rootX] > ds.rank[rootY]:
		ds.parent[rootY] = rootX
	default:
		ds.parent[rootY] = rootX
		ds.rank[rootX]++
	}
	ds.sets--
	return true
}

// Connected reports whether x and y belong to the same set.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Sets returns the number of disjoint sets remaining.
func (ds *DisjointSet) Sets() int {
	return ds.sets
}

// Len returns the number of elements tracked.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

func (ds *DisjointSet) mustContain(x int) {
	if x < 0 || x >= len(ds.parent) {
		panic(fmt.Sprintf("maze: disjoint set index %d out of range [0,%d)", x, len(ds.parent)))
	}
}
