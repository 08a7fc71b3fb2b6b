package geometry

import "errors"

// ErrNotWalkable is returned by CalcDistanceGCost when the destination, the
// source, or one of the intermediate corner cells of a diagonal/knight move
// is not trace-walkable.
var ErrNotWalkable = errors.New("geometry: endpoint or corner cell is not trace-walkable")

// BaseCosts holds the per-move-class base distance cost, in ONE_TRAVERSAL
// units (cell · 100), before any per-cell cost multiplier is applied.
type BaseCosts struct {
	Lateral  int64 // N/S/E/W
	Diagonal int64 // NE/SE/SW/NW
	Knight   int64 // the 8 knight jumps
	Vertical int64 // UP/DOWN via jump
}

// DefaultBaseCosts approximates true Euclidean move length so that the
// octile/knight heuristic in CalcHeuristic stays admissible: a diagonal
// step of length sqrt(2) costs ~1.41x a lateral step, and a knight step of
// length sqrt(5) costs ~2.24x.
func DefaultBaseCosts() BaseCosts {
	return BaseCosts{
		Lateral:  1 * ONE_TRAVERSAL,
		Diagonal: 141 * ONE_TRAVERSAL / 100,
		Knight:   224 * ONE_TRAVERSAL / 100,
		Vertical: 1 * ONE_TRAVERSAL,
	}
}

// baseFor returns the configured base cost for d's move class.
func (b BaseCosts) baseFor(class Class) int64 {
	switch class {
	case ClassLateral:
		return b.Lateral
	case ClassDiagonal:
		return b.Diagonal
	case ClassKnight:
		return b.Knight
	default:
		return b.Vertical
	}
}

// CellView is the read-only grid surface that the cost primitives in this
// package need. gridstore.Grid implements it; geometry never imports
// gridstore, which keeps the dependency one-directional.
type CellView interface {
	// Walkable reports whether shape may occupy/cross the cell at c.
	Walkable(c Coordinate, shape ShapeType) bool
	// InPinSwapZone reports whether c lies in a pin-swap zone, where cost
	// multipliers are bypassed and the heuristic is scaled down.
	InPinSwapZone(c Coordinate) bool
	// CostMultiplier returns the multiplier (scaled by 100; 100 == 1.0x)
	// applying to shape at cell c.
	CostMultiplier(c Coordinate, shape ShapeType) int64
}

// CalcDistanceGCost returns the per-move distance cost of stepping from
// 'from' to an adjacent 'to' while routing path shape 'shape', per §4.1 of
// the router core spec: one of {Lateral, Diagonal, Knight, Vertical}
// multiplied by the destination's cost multiplier, unless 'to' lies in a
// pin-swap zone (multipliers bypassed). Both endpoints and every corner
// cell crossed by a diagonal or knight move must be trace-walkable.
func CalcDistanceGCost(view CellView, costs BaseCosts, from, to Coordinate, shape ShapeType) (int64, error) {
	dir, ok := DirectionOf(to.X-from.X, to.Y-from.Y, to.Z-from.Z)
	if !ok {
		return 0, errors.New("geometry: from/to is not a legal lattice move")
	}

	if !view.Walkable(from, ShapeTrace) || !view.Walkable(to, ShapeTrace) {
		return 0, ErrNotWalkable
	}
	for _, corner := range CornerCells(from, to) {
		if !view.Walkable(corner, ShapeTrace) {
			return 0, ErrNotWalkable
		}
	}

	base := costs.baseFor(dir.Class())
	if view.InPinSwapZone(to) {
		return base, nil
	}

	mult := view.CostMultiplier(to, shape)
	return base * mult / 100, nil
}
