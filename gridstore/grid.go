package gridstore

import (
	"fmt"

	"github.com/acorn-router/acorn/geometry"
)

// Grid is the 3-D lattice of Cells that A*, the congestion feedback loop,
// and the metrics package all read and write. It is immutable in shape
// (Width/Height/Layers) once built; Cells mutate in place.
//
// Cells are stored flat, row-major within each layer, so NewGrid's single
// allocation keeps the whole lattice in one contiguous block rather than a
// forest of per-row slices.
type Grid struct {
	Width, Height, Layers int

	// Origin is the parent-grid coordinate this grid's (0,0,0) corresponds
	// to. It is the zero Coordinate for a top-level grid and the sub-map's
	// lower corner for a grid built by SubMap, so callers can translate
	// coordinates between the two frames.
	Origin geometry.Coordinate

	cells []Cell // index via idx(x,y,z)

	rules DesignRules
	epoch uint64

	// universalRepellent is the synthetic path number whose congestion
	// entries evaporateCongestion must never touch. -1 means no path
	// number is exempt.
	universalRepellent int
}

// NewGrid allocates a Width x Height x Layers lattice of zero-valued Cells.
// rules may be nil if no design-rule-dependent operation (AddCongestionAroundTerminal)
// will be used against this grid.
// universalRepellent names the path number deposited-into by permanent
// repulsive congestion (spec §3: numPaths + numPseudoPaths); pass -1 if
// this grid will never carry one.
func NewGrid(width, height, layers int, rules DesignRules, universalRepellent int) (*Grid, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return nil, ErrZeroDimension
	}

	return &Grid{
		Width:              width,
		Height:             height,
		Layers:             layers,
		cells:              make([]Cell, width*height*layers),
		rules:              rules,
		universalRepellent: universalRepellent,
	}, nil
}

// InBounds reports whether c lies within the grid's dimensions.
func (g *Grid) InBounds(c geometry.Coordinate) bool {
	return c.X >= 0 && c.X < g.Width &&
		c.Y >= 0 && c.Y < g.Height &&
		c.Z >= 0 && c.Z < g.Layers
}

func (g *Grid) idx(c geometry.Coordinate) int {
	return (c.Z*g.Height+c.Y)*g.Width + c.X
}

// At returns a pointer to the cell at c. Callers must check InBounds first;
// At panics on an out-of-range coordinate the same way a slice index would.
func (g *Grid) At(c geometry.Coordinate) *Cell {
	return &g.cells[g.idx(c)]
}

// CellAt is the bounds-checked counterpart of At.
func (g *Grid) CellAt(c geometry.Coordinate) (*Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return g.At(c), nil
}

// Walkable implements geometry.CellView.
func (g *Grid) Walkable(c geometry.Coordinate, shape geometry.ShapeType) bool {
	if !g.InBounds(c) {
		return false
	}
	cell := g.At(c)
	if cell.forbidden(shape) {
		return false
	}
	if cell.ForbidProximity && !cell.SwapZone {
		return false
	}
	return true
}

// InPinSwapZone implements geometry.CellView.
func (g *Grid) InPinSwapZone(c geometry.Coordinate) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.At(c).SwapZone
}

// CostMultiplier implements geometry.CellView. Pin-swap bypass is handled
// by geometry.CalcDistanceGCost itself; this reports the raw multiplier.
func (g *Grid) CostMultiplier(c geometry.Coordinate, shape geometry.ShapeType) int64 {
	if !g.InBounds(c) || g.rules == nil {
		return 100
	}
	cell := g.At(c)
	return g.rules.CostMultiplierX100(cell.multiplierIndex(shape))
}

// CongestionAt implements geometry.CongestionView.
func (g *Grid) CongestionAt(c geometry.Coordinate) []geometry.CongestionEntry {
	if !g.InBounds(c) {
		return nil
	}
	return g.At(c).congestion
}
