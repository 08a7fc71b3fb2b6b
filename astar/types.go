package astar

import "github.com/acorn-router/acorn/geometry"

// RoutingRestriction confines a search to a subset of layers, and
// optionally to a disc of a given radius per layer, per spec §4.3.
type RoutingRestriction struct {
	RestrictionFlag   bool
	AllowedLayers     []bool // indexed by Z; ignored unless RestrictionFlag
	AllowedRadiiCells []int  // indexed by Z; 0 or negative means unrestricted on that layer
	CenterX, CenterY  int
}

// NoRestriction returns a RoutingRestriction that leaves every layer
// unconstrained, grounded on the reference router's
// createNoRoutingRestrictions helper.
func NoRestriction() RoutingRestriction {
	return RoutingRestriction{RestrictionFlag: false}
}

// allows reports whether c may be entered under r.
func (r RoutingRestriction) allows(c geometry.Coordinate) bool {
	if !r.RestrictionFlag {
		return true
	}
	if c.Z < 0 || c.Z >= len(r.AllowedLayers) || !r.AllowedLayers[c.Z] {
		return false
	}
	if c.Z < len(r.AllowedRadiiCells) {
		if radius := r.AllowedRadiiCells[c.Z]; radius > 0 {
			dx, dy := c.X-r.CenterX, c.Y-r.CenterY
			if dx*dx+dy*dy > radius*radius {
				return false
			}
		}
	}
	return true
}

// CongestionModel supplies the per-move congestion penalty A* adds on top
// of geometry.CalcDistanceGCost, per spec §4.3: "calc_congestion_penalty
// includes both trace congestion at neighbor and via congestion if the
// move changes Z." Implementations live in the congestion package; astar
// only depends on this narrow interface to avoid importing it.
type CongestionModel interface {
	// TracePenalty returns the trace-congestion cost of entering neighbor
	// while routing pathNum.
	TracePenalty(neighbor geometry.Coordinate, pathNum int) int64
	// ViaPenalty returns the via-congestion cost of a Z-changing move from
	// parent to neighbor while routing pathNum.
	ViaPenalty(parent, neighbor geometry.Coordinate, pathNum int) int64
}

// NoCongestion is a CongestionModel that always returns zero, used for
// iteration 1's rat's-nest overview pass (spec §4.3: "congestion penalty
// may be clamped to 0").
type NoCongestion struct{}

func (NoCongestion) TracePenalty(geometry.Coordinate, int) int64        { return 0 }
func (NoCongestion) ViaPenalty(geometry.Coordinate, geometry.Coordinate, int) int64 { return 0 }

// Options configures a single Search call.
type Options struct {
	Mask        geometry.DirMask
	Shape       geometry.ShapeType
	PathNum     int
	BaseCosts   geometry.BaseCosts
	Congestion  CongestionModel // nil is treated as NoCongestion{}
	Restriction RoutingRestriction
}

// Result is the outcome of a successful Search: the non-contiguous path
// (spec §3) from start to the requested end, head-to-tail, plus its total
// G-cost (distance cost only, congestion cost is not included in the
// reported total — see spec §8 "sum of calc_distance_G_cost... equals the
// returned total (ignoring congestion penalty)").
type Result struct {
	Path  []geometry.Coordinate
	GCost int64
}

// ExpandContiguous inserts the one or two corner cells geometry.CornerCells
// names into every diagonal or knight jump of path, producing the
// contiguous form spec §3 defines: every consecutive pair in the result
// differs by exactly one Manhattan or vertical step.
func ExpandContiguous(path []geometry.Coordinate) []geometry.Coordinate {
	if len(path) == 0 {
		return nil
	}
	out := make([]geometry.Coordinate, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		out = append(out, geometry.CornerCells(from, to)...)
		out = append(out, to)
	}
	return out
}
