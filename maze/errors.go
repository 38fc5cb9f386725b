package maze

import "errors"

var (
	// ErrInvalidDimension is returned when a maze is requested with a non-positive dimension.
	ErrInvalidDimension = errors.New("maze dimension must be positive")
	// ErrNegativeCount is returned when a disjoint set is created with a negative size.
	ErrNegativeCount = errors.New("number of elements cannot be negative")
	// ErrEmptyGrid is returned when a grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid must have at least one row and one column")
	// ErrRaggedGrid is returned when grid rows have inconsistent lengths.
	ErrRaggedGrid = errors.New("grid rows have inconsistent lengths")
	// ErrInvalidCell is returned when a raw grid holds a value other than 0 or 1.
	ErrInvalidCell = errors.New("grid cell must be 0 (passage) or 1 (wall)")
	// ErrUnknownAlgorithm is returned for an unsupported generation algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown maze generation algorithm")
)
