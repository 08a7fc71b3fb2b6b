package geometry

// CongestionEntry is one sparse congestion record carried by a cell: the
// path that deposited it, the design-rule subset and shape-type it was
// deposited for, and the accumulated deposit in traversal-times-100 units.
type CongestionEntry struct {
	PathNum        int
	Subset         int
	Shape          ShapeType
	TraversalsX100 int64
}

// CongestionView exposes read access to a cell's sparse congestion list.
// gridstore.Grid implements this; pseudo-paths and the universal repellent
// are ordinary entries from this package's point of view — the caller
// (gridstore) is responsible for ensuring the universal repellent's entries
// never evaporate, not this package.
type CongestionView interface {
	CongestionAt(c Coordinate) []CongestionEntry
}

// CalcViaCongestion returns the congestion-G-cost of a via between
// (parent.X, parent.Y, parent.Z) and (parent.X, parent.Y, targetZ): the sum,
// over every path with a VIA_UP or VIA_DOWN deposit on either the current or
// target cell, of that path's largest single deposit at either cell. Taking
// the max rather than the sum across VIA_UP and VIA_DOWN entries for the
// same path implements the spec's "de-duplication across shape-types" --
// a path that deposited both an up-via and a down-via entry at a site
// (e.g. because two different nets pass through) is counted once, at its
// worst contribution, not twice.
//
// viaMultiplier is the iteration-dependent via-congestion multiplier
// (scaled by 100); see the congestion package for how it evolves over a
// run.
func CalcViaCongestion(view CongestionView, parent Coordinate, targetZ int, viaMultiplier int64) int64 {
	target := Coordinate{X: parent.X, Y: parent.Y, Z: targetZ}

	worst := make(map[int]int64)
	accumulate := func(c Coordinate) {
		for _, e := range view.CongestionAt(c) {
			if e.Shape != ShapeViaUp && e.Shape != ShapeViaDown {
				continue
			}
			if cur, ok := worst[e.PathNum]; !ok || e.TraversalsX100 > cur {
				worst[e.PathNum] = e.TraversalsX100
			}
		}
	}
	accumulate(parent)
	accumulate(target)

	var total int64
	for _, v := range worst {
		total += v
	}
	return total * viaMultiplier / 100
}
