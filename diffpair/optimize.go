package diffpair

import (
	"context"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

// PseudoPathInput bundles one differential pair's inputs for Optimize: its
// shared centerline, the two shoulder children's own contiguous coordinate
// sequences (kept in parallel with the centerline, per DetectConnections),
// and the callbacks DetectConnections needs to classify vias, prior-
// iteration DRC cleanliness, and pin-swap zones.
type PseudoPathInput struct {
	Child1PathNum, Child2PathNum int
	Subset                       int
	Centerline, Child1, Child2   []geometry.Coordinate
	IsVia                        func(idx int) bool
	DRCClean                     func(startIdx, endIdx int) bool
	InSwapZone                   func(geometry.Coordinate) bool
	// PNSwappable reports whether this pseudo-path's P and N roles may be
	// exchanged wholesale to resolve odd-swap-count parity.
	PNSwappable bool
}

// OptimizeResult is the outcome of running the full diff-pair optimizer
// over one pseudo-path: its two re-stitched children, the staircase
// decision recorded per connection, and whether parity correction
// exchanged the start terminals.
type OptimizeResult struct {
	Child1, Child2        []geometry.Coordinate
	Decisions             []DecisionResult
	SwappedStartTerminals bool
}

// Optimize runs spec §4.6 end to end for one pseudo-path: detect its
// connections, decide each via the degenerate/geometric/congestion-
// memory/sub-map staircase, re-stitch the two children, and, if parity
// correction exchanged the start terminals, relabel the congestion at the
// new shared start cell so the grid's history stays consistent with the
// swapped assignment.
func Optimize(ctx context.Context, grid *gridstore.Grid, input PseudoPathInput, dominance DominanceResolver, congestionRadiusCells int, subMapCfg SubMapConfig) (OptimizeResult, error) {
	conns, err := DetectConnections(input.Centerline, input.Child1, input.Child2, input.IsVia, input.DRCClean, input.InSwapZone)
	if err != nil {
		return OptimizeResult{}, err
	}

	decisions := make([]DecisionResult, len(conns))
	for i, conn := range conns {
		d, err := DecideConnection(ctx, conn, dominance, congestionRadiusCells, subMapCfg)
		if err != nil {
			return OptimizeResult{}, err
		}
		decisions[i] = d
	}

	newChild1, newChild2, swappedStart, err := Restitch(conns, decisions, input.Child1, input.Child2, input.PNSwappable)
	if err != nil {
		return OptimizeResult{}, err
	}

	if swappedStart && grid != nil && len(newChild1) > 0 {
		if err := grid.SwapCongestionPaths(newChild1[0], input.Child1PathNum, input.Child2PathNum); err != nil {
			return OptimizeResult{}, err
		}
	}

	return OptimizeResult{
		Child1:                newChild1,
		Child2:                newChild2,
		Decisions:             decisions,
		SwappedStartTerminals: swappedStart,
	}, nil
}

// DecideConnection runs the four-rung staircase of spec §4.6 on one
// connection: degenerate coincidence, then the geometric test, then
// congestion-memory, falling through to the sub-map A* comparison only
// when every earlier rung defers.
func DecideConnection(ctx context.Context, conn Connection, dominance DominanceResolver, congestionRadiusCells int, subMapCfg SubMapConfig) (DecisionResult, error) {
	if result, ok, err := decideDegenerate(conn); err != nil {
		return DecisionResult{}, err
	} else if ok {
		return result, nil
	}

	if result, ok := decideGeometric(conn); ok {
		return result, nil
	}

	if dominance != nil {
		if result, ok := decideCongestionMemory(conn, dominance, congestionRadiusCells, subMapCfg.Child1PathNum, subMapCfg.Child2PathNum); ok {
			return result, nil
		}
	}

	return decideBySubMap(ctx, conn, subMapCfg)
}
