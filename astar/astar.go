package astar

import (
	"fmt"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

// Search finds the cheapest path from start to end for pathNum under opts,
// following spec §4.3. It returns (Result, true) on success. On search
// failure — the open set empties before end is reached — it returns a
// zero Result and false; this is a recoverable sentinel outcome, not an
// error (spec §7: "Search failure... recovered by the sub-map optimizer").
// A non-nil error indicates a structural precondition violation instead
// (bad restriction shape, an unwalkable end cell) and is always fatal to
// the caller.
func Search(grid *gridstore.Grid, start, end geometry.Coordinate, opts Options) (Result, bool, error) {
	if err := validate(grid, start, end, opts); err != nil {
		return Result{}, false, err
	}
	if start == end {
		return Result{Path: []geometry.Coordinate{start}, GCost: 0}, true, nil
	}

	congestion := opts.Congestion
	if congestion == nil {
		congestion = NoCongestion{}
	}

	grid.BeginSearch()
	open := newOpenSet(grid)

	starts, err := grid.ConnectedPinSwapRegion(start)
	if err != nil {
		return Result{}, false, err
	}
	for i, s := range starts {
		h := geometry.CalcHeuristic(opts.BaseCosts, opts.Mask, s, end, grid.InPinSwapZone(s), grid.InPinSwapZone(end))
		grid.SetCosts(s, 0, h)
		grid.SetSource(s, i)
		grid.SetOpenClosed(s, true, false)
		open.pushOrFix(s)
	}

	found := false
	for open.Len() > 0 {
		cur := open.popMin()
		grid.SetOpenClosed(cur, false, true)

		if cur == end {
			found = true
			break
		}
		expand(grid, cur, end, opts, congestion, open)
	}
	if !found {
		return Result{}, false, nil
	}

	path := backtrace(grid, end)
	total, err := pathDistanceCost(grid, opts, path)
	if err != nil {
		return Result{}, false, err
	}
	return Result{Path: path, GCost: total}, true, nil
}

func validate(grid *gridstore.Grid, start, end geometry.Coordinate, opts Options) error {
	if !grid.InBounds(start) {
		return fmt.Errorf("%w: start %v", gridstore.ErrOutOfBounds, start)
	}
	if !grid.InBounds(end) {
		return fmt.Errorf("%w: end %v", gridstore.ErrOutOfBounds, end)
	}
	if !grid.Walkable(end, opts.Shape) {
		return fmt.Errorf("%w: %v", ErrEndNotWalkable, end)
	}
	if opts.Restriction.RestrictionFlag {
		if len(opts.Restriction.AllowedLayers) != grid.Layers {
			return fmt.Errorf("%w: %d layers vs grid.Layers=%d", ErrBadRestriction, len(opts.Restriction.AllowedLayers), grid.Layers)
		}
	}
	return nil
}

// moveShape maps a lattice direction to the shape type whose barrier bits
// and cost multiplier govern that move: vertical jumps carry via shapes,
// every other direction carries the path's own trace/via shoulder shape.
func moveShape(dir geometry.Direction, fallback geometry.ShapeType) geometry.ShapeType {
	switch dir {
	case geometry.DirUp:
		return geometry.ShapeViaUp
	case geometry.DirDown:
		return geometry.ShapeViaDown
	default:
		return fallback
	}
}

func expand(grid *gridstore.Grid, cur, end geometry.Coordinate, opts Options, congestion CongestionModel, open *openSet) {
	curG, _ := grid.GCost(cur)
	curSource := grid.Source(cur)

	for _, dir := range geometry.AllDirections() {
		if !opts.Mask.Has(dir) {
			continue
		}
		delta := dir.Delta()
		neighbor := cur.Add(delta)
		if !opts.Restriction.allows(neighbor) {
			continue
		}
		if grid.IsClosed(neighbor) {
			continue
		}

		shape := moveShape(dir, opts.Shape)
		if !grid.Walkable(neighbor, shape) {
			continue
		}
		moveCost, err := geometry.CalcDistanceGCost(grid, opts.BaseCosts, cur, neighbor, shape)
		if err != nil {
			continue
		}

		penalty := congestion.TracePenalty(neighbor, opts.PathNum)
		if delta.DZ != 0 {
			penalty += congestion.ViaPenalty(cur, neighbor, opts.PathNum)
		}

		tentativeG := curG + moveCost + penalty
		existingG, touched := grid.GCost(neighbor)
		if touched && tentativeG >= existingG {
			continue
		}

		h := geometry.CalcHeuristic(opts.BaseCosts, opts.Mask, neighbor, end, grid.InPinSwapZone(neighbor), grid.InPinSwapZone(end))
		grid.SetCosts(neighbor, tentativeG, h)
		grid.SetParent(neighbor, dir)
		grid.SetSource(neighbor, curSource)
		grid.SetOpenClosed(neighbor, true, false)
		open.pushOrFix(neighbor)
	}
}

// backtrace walks parent directions from end back to whichever seeded
// start reached it first, returning the head-to-tail (start -> end) path.
func backtrace(grid *gridstore.Grid, end geometry.Coordinate) []geometry.Coordinate {
	var reversed []geometry.Coordinate
	cur := end
	for {
		reversed = append(reversed, cur)
		dir, hasParent := grid.ParentDir(cur)
		if !hasParent {
			break
		}
		d := dir.Delta()
		cur = geometry.Coordinate{X: cur.X - d.DX, Y: cur.Y - d.DY, Z: cur.Z - d.DZ}
	}
	path := make([]geometry.Coordinate, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}

// pathDistanceCost recomputes the pure distance cost (no congestion) of a
// non-contiguous path, per spec §8's determinism property that the
// reported total ignores congestion penalty.
func pathDistanceCost(grid *gridstore.Grid, opts Options, path []geometry.Coordinate) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		delta := to.Sub(from)
		dir, ok := geometry.DirectionOf(delta.DX, delta.DY, delta.DZ)
		if !ok {
			return 0, fmt.Errorf("astar: path segment %v->%v is not a legal lattice move", from, to)
		}
		cost, err := geometry.CalcDistanceGCost(grid, opts.BaseCosts, from, to, moveShape(dir, opts.Shape))
		if err != nil {
			return 0, err
		}
		total += cost
	}
	return total, nil
}
