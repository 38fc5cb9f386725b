// Package mazeapi exposes maze generation and solving over HTTP.
package mazeapi

import "github.com/beka-birhanu/vinom-maze/maze"

// Point is a grid coordinate as sent by clients; x is the column, y the row.
type Point struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// SolveRequest represents a request to solve a maze.
type SolveRequest struct {
	Maze  *[][]int `json:"maze"`
	Start *Point   `json:"start"`
	Goal  *Point   `json:"goal"`
}

// SolveResponse carries the path as [x, y] pairs; a null path means unreachable.
type SolveResponse struct {
	Path [][2]int `json:"path"`
}

func (p *Point) complete() bool {
	return p.X != nil && p.Y != nil
}

func (p *Point) position() maze.Position {
	return maze.Position{X: *p.X, Y: *p.Y}
}

func toPairs(path []maze.Position, found bool) [][2]int {
	if !found {
		return nil
	}
	pairs := make([][2]int, len(path))
	for i, p := range path {
		pairs[i] = [2]int{p.X, p.Y}
	}
	return pairs
}
