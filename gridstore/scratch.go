package gridstore

import "github.com/acorn-router/acorn/geometry"

// BeginSearch starts a fresh A* epoch: every cell's scratch state reads as
// freshly zeroed from this point on, without the grid having to walk and
// reset every cell eagerly. A cell only pays the reset cost lazily, the
// first time a search after BeginSearch touches it.
func (g *Grid) BeginSearch() {
	g.epoch++
}

// resolve lazily resets c's scratch area to epoch g.epoch if it still
// belongs to a stale epoch, then returns a pointer to it.
func (g *Grid) resolve(c geometry.Coordinate) *scratch {
	cell := g.At(c)
	s := &cell.scratch
	if s.epoch != g.epoch {
		*s = scratch{epoch: g.epoch, heapIndex: -1}
	}
	return s
}

// IsOpen reports whether c is currently a member of the A* open set.
func (g *Grid) IsOpen(c geometry.Coordinate) bool { return g.resolve(c).open }

// IsClosed reports whether c has already been finalized by A*.
func (g *Grid) IsClosed(c geometry.Coordinate) bool { return g.resolve(c).closed }

// SetOpenClosed transitions c between open, closed, and neither.
func (g *Grid) SetOpenClosed(c geometry.Coordinate, open, closed bool) {
	s := g.resolve(c)
	s.open, s.closed = open, closed
}

// GCost returns c's best known cumulative cost this epoch, and whether the
// cell has been assigned one yet (false means "never relaxed").
func (g *Grid) GCost(c geometry.Coordinate) (int64, bool) {
	s := g.resolve(c)
	return s.gCost, s.touched
}

// SetCosts records c's gCost/hCost for the current epoch.
func (g *Grid) SetCosts(c geometry.Coordinate, gCost, hCost int64) {
	s := g.resolve(c)
	s.gCost, s.hCost, s.touched = gCost, hCost, true
}

// FCost returns gCost + hCost for the current epoch.
func (g *Grid) FCost(c geometry.Coordinate) int64 {
	s := g.resolve(c)
	return s.gCost + s.hCost
}

// HCost returns c's heuristic estimate for the current epoch, used by the
// open set to break ties between equal fCosts.
func (g *Grid) HCost(c geometry.Coordinate) int64 {
	return g.resolve(c).hCost
}

// ParentDir returns the direction A* entered c from, and whether c has a
// recorded parent (false for a seeded multi-source start).
func (g *Grid) ParentDir(c geometry.Coordinate) (geometry.Direction, bool) {
	s := g.resolve(c)
	return s.parentDir, s.hasParent
}

// SetParent records the direction c was entered from.
func (g *Grid) SetParent(c geometry.Coordinate, dir geometry.Direction) {
	s := g.resolve(c)
	s.parentDir, s.hasParent = dir, true
}

// Source returns the seeded-start index that first discovered c, used to
// disambiguate which pin-swap-region start a backtrace should stop at.
func (g *Grid) Source(c geometry.Coordinate) int { return g.resolve(c).source }

// SetSource records which seeded start discovered c.
func (g *Grid) SetSource(c geometry.Coordinate, source int) {
	g.resolve(c).source = source
}

// HeapIndex returns c's position in the open-set's backing array, or -1 if
// c is not currently queued. The open-set implementation (astar package)
// uses this as its cell-to-heap-slot backpointer for decrease-key.
func (g *Grid) HeapIndex(c geometry.Coordinate) int { return g.resolve(c).heapIndex }

// SetHeapIndex records c's position in the open-set's backing array.
func (g *Grid) SetHeapIndex(c geometry.Coordinate, idx int) {
	g.resolve(c).heapIndex = idx
}
