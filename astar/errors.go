package astar

import "errors"

// Sentinel errors of the astar package. Search returns ErrEndNotWalkable and
// ErrBadRestriction (wrapped with context); it never returns ErrSameStartEnd
// or ErrStartNotWalkable.
var (
	// ErrSameStartEnd indicates start and end coordinates are identical.
	// Search does not return it: a start equal to end yields a single-cell,
	// zero-cost path.
	ErrSameStartEnd = errors.New("astar: start and end coordinates are identical")
	// ErrStartNotWalkable indicates the start cell forbids the requested
	// shape. Search does not check the start cell's walkability.
	ErrStartNotWalkable = errors.New("astar: start cell is not walkable for this shape")
	// ErrEndNotWalkable indicates the end cell forbids the requested shape.
	ErrEndNotWalkable = errors.New("astar: end cell is not walkable for this shape")
	// ErrBadRestriction indicates a RoutingRestriction's per-layer slices
	// don't cover the grid's layer count.
	ErrBadRestriction = errors.New("astar: routing restriction layer slices do not match grid layer count")
)
