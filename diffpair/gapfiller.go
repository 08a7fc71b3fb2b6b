package diffpair

import (
	"github.com/acorn-router/acorn/astar"
	"github.com/acorn-router/acorn/geometry"
)

// maxGapLateralCells is the 5-cell bound spec §4.6 places on the gap-filler:
// beyond it, FindShortPathHeuristically returns ErrGapTooLarge.
const maxGapLateralCells = 5

// FindShortPathHeuristically bridges a small same-layer gap between start
// and end without invoking the full path-finder (see bridgeCandidates for
// how the candidate bridges are enumerated). Each legal candidate (every
// consecutive pair a canonical move, every cell trace-walkable) is costed
// by distance plus congestion; the cheapest wins, ties favor whichever
// candidate bridgeCandidates produced first.
func FindShortPathHeuristically(view geometry.CellView, costs geometry.BaseCosts, congestionModel astar.CongestionModel, pathNum int, shape geometry.ShapeType, start, end geometry.Coordinate) ([]geometry.Coordinate, error) {
	if start.Z != end.Z {
		return nil, ErrGapTooLarge
	}
	dx, dy := end.X-start.X, end.Y-start.Y
	if abs(dx) > maxGapLateralCells || abs(dy) > maxGapLateralCells {
		return nil, ErrGapTooLarge
	}
	if congestionModel == nil {
		congestionModel = astar.NoCongestion{}
	}

	var best []geometry.Coordinate
	var bestCost int64
	found := false
	for _, cand := range bridgeCandidates(start, end) {
		cost, ok := bridgeCost(view, costs, congestionModel, pathNum, shape, cand)
		if !ok {
			continue
		}
		if !found || cost < bestCost {
			best, bestCost, found = cand, cost, true
		}
	}
	if !found {
		return nil, ErrNoLegalBridge
	}
	return best, nil
}

// bridgeDirOrder is the direction catalog in knight-diagonal-lateral
// priority: enumerating the longer-reaching moves first means that, when
// two single-intermediate bridges tie on cost, the one whose first leg
// is the larger move (Table G1's "route A") is kept, matching the
// reference router's tie-break.
var bridgeDirOrder = [geometry.NumDirections]geometry.Direction{
	geometry.DirNxNE, geometry.DirExNE, geometry.DirExSE, geometry.DirSxSE,
	geometry.DirSxSW, geometry.DirWxSW, geometry.DirWxNW, geometry.DirNxNW,
	geometry.DirNE, geometry.DirSE, geometry.DirSW, geometry.DirNW,
	geometry.DirN, geometry.DirS, geometry.DirE, geometry.DirW,
	geometry.DirUp, geometry.DirDown,
}

// bridgeCandidates enumerates the direct move, every single-intermediate
// bridge (one pair of canonical moves summing to the start-end vector),
// and, only if no single-intermediate bridge exists, every two-
// intermediate bridge (a triple of canonical moves) — the same case
// analysis Table G1 tabulates by Δx/Δy, worked combinatorially here
// rather than transcribed (see DESIGN.md).
func bridgeCandidates(start, end geometry.Coordinate) [][]geometry.Coordinate {
	dx, dy := end.X-start.X, end.Y-start.Y
	var out [][]geometry.Coordinate

	if _, ok := geometry.DirectionOf(dx, dy, 0); ok {
		out = append(out, []geometry.Coordinate{start, end})
	}

	for _, d1 := range bridgeDirOrder {
		delta1 := d1.Delta()
		mid := geometry.Coordinate{X: start.X + delta1.DX, Y: start.Y + delta1.DY, Z: start.Z}
		if mid == start || mid == end {
			continue
		}
		if _, ok := geometry.DirectionOf(end.X-mid.X, end.Y-mid.Y, 0); ok {
			out = append(out, []geometry.Coordinate{start, mid, end})
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, d1 := range bridgeDirOrder {
		delta1 := d1.Delta()
		midA := geometry.Coordinate{X: start.X + delta1.DX, Y: start.Y + delta1.DY, Z: start.Z}
		if midA == start {
			continue
		}
		for _, d2 := range bridgeDirOrder {
			delta2 := d2.Delta()
			midB := geometry.Coordinate{X: midA.X + delta2.DX, Y: midA.Y + delta2.DY, Z: start.Z}
			if midB == midA || midB == start {
				continue
			}
			if _, ok := geometry.DirectionOf(end.X-midB.X, end.Y-midB.Y, 0); ok {
				out = append(out, []geometry.Coordinate{start, midA, midB, end})
			}
		}
	}
	return out
}

// bridgeCost sums geometry.CalcDistanceGCost plus trace-congestion penalty
// over every leg of cand, reporting ok=false the moment any leg is illegal
// (unwalkable, out of bounds, or not a canonical move).
func bridgeCost(view geometry.CellView, costs geometry.BaseCosts, congestionModel astar.CongestionModel, pathNum int, shape geometry.ShapeType, cand []geometry.Coordinate) (int64, bool) {
	var total int64
	for i := 1; i < len(cand); i++ {
		from, to := cand[i-1], cand[i]
		legCost, err := geometry.CalcDistanceGCost(view, costs, from, to, shape)
		if err != nil {
			return 0, false
		}
		total += legCost + congestionModel.TracePenalty(to, pathNum)
	}
	return total, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
