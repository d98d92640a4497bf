package maze

import "errors"

var (
	// ErrInvalidDimensions indicates a config with fewer than one row or column.
	ErrInvalidDimensions = errors.New("maze: columns and rows must be at least 1")
	// ErrRootOutOfBounds indicates an exploration root outside the grid.
	ErrRootOutOfBounds = errors.New("maze: root outside grid")
)
