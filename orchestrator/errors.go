package orchestrator

import (
	"errors"
	"fmt"

	"github.com/acorn-router/acorn/geometry"
)

// Sentinel errors for the non-fatal (wrapped, contextual) error kinds spec
// §7 describes. Search failure itself is not one of these — astar.Search
// already reports it as a sentinel (Result, false, nil) return, matching
// the spec's "recovered ... or propagated" language — but the orchestrator
// wraps a failed search that it cannot recover from (no sub-map to fall
// back to, unlike the diff-pair optimizer) into ErrPathSearchFailed.
var (
	ErrPathSearchFailed  = errors.New("orchestrator: path search failed")
	ErrUnknownPseudoLink = errors.New("orchestrator: pseudo-path references an unknown child path number")
)

// FatalError is spec §7's "exceptions/panics become a Fatal error kind"
// design note, given a concrete Go shape: a typed, wrapped error carrying
// exactly the diagnostic context (iteration, path number, endpoints) every
// fatal kind in §7 requires a caller-facing message to include.
type FatalError struct {
	Iteration int
	PathNum   int
	Coords    [2]geometry.Coordinate
	Err       error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("orchestrator: fatal at iteration %d, path %d (%v -> %v): %v",
		e.Iteration, e.PathNum, e.Coords[0], e.Coords[1], e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

func fatal(iteration, pathNum int, start, end geometry.Coordinate, err error) *FatalError {
	return &FatalError{Iteration: iteration, PathNum: pathNum, Coords: [2]geometry.Coordinate{start, end}, Err: err}
}
