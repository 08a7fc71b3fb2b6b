package gridstore

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/acorn-router/acorn/geometry"
)

// AddCongestion implements spec §4.2 addCongestion: if an entry already
// matches (path, subset, shape) at c, its TraversalsX100 increases by
// penalty; otherwise a new entry is appended. A penalty that drives an
// existing entry's value to zero or below removes the entry, preserving
// invariant 2 (no zero-valued entries survive a write).
func (g *Grid) AddCongestion(c geometry.Coordinate, path, subset int, shape geometry.ShapeType, penalty int64) error {
	cell, err := g.CellAt(c)
	if err != nil {
		return err
	}
	if cell.SwapZone {
		return nil // invariant 3: swap-zone cells never carry congestion
	}

	for i := range cell.congestion {
		e := &cell.congestion[i]
		if e.PathNum == path && e.Subset == subset && e.Shape == shape {
			e.TraversalsX100 += penalty
			if e.TraversalsX100 <= 0 {
				cell.congestion = append(cell.congestion[:i], cell.congestion[i+1:]...)
			}
			return nil
		}
	}
	if penalty == 0 {
		return nil
	}
	cell.congestion = append(cell.congestion, geometry.CongestionEntry{
		PathNum:        path,
		Subset:         subset,
		Shape:          shape,
		TraversalsX100: penalty,
	})
	return nil
}

// AssignCongestionByPathIndex is the fundamental raw-write primitive used
// by evaporation: it overwrites the TraversalsX100 of the idx'th entry in
// c's sparse congestion list, removing the entry outright if value <= 0.
func (g *Grid) AssignCongestionByPathIndex(c geometry.Coordinate, idx int, value int64) error {
	cell, err := g.CellAt(c)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(cell.congestion) {
		return nil
	}
	if value <= 0 {
		cell.congestion = append(cell.congestion[:idx], cell.congestion[idx+1:]...)
		return nil
	}
	cell.congestion[idx].TraversalsX100 = value
	return nil
}

// EvaporateCongestion scales every non-universal-repellent congestion
// entry in the grid by (1 - ratePercent/100), flooring to an integer and
// dropping entries that reach zero. Layers are independent (each cell's
// sparse list is owned by its (x,y,z) triple) so the work is partitioned
// one goroutine per Z layer, mirroring the fork-join parallel-for spec §5
// calls for.
func (g *Grid) EvaporateCongestion(ctx context.Context, ratePercent int64) error {
	grp, _ := errgroup.WithContext(ctx)
	for z := 0; z < g.Layers; z++ {
		z := z
		grp.Go(func() error {
			for y := 0; y < g.Height; y++ {
				for x := 0; x < g.Width; x++ {
					g.evaporateCell(geometry.Coordinate{X: x, Y: y, Z: z}, ratePercent)
				}
			}
			return nil
		})
	}
	return grp.Wait()
}

func (g *Grid) evaporateCell(c geometry.Coordinate, ratePercent int64) {
	cell := g.At(c)
	if len(cell.congestion) == 0 {
		return
	}
	kept := cell.congestion[:0]
	for _, e := range cell.congestion {
		if e.PathNum == g.universalRepellent {
			kept = append(kept, e)
			continue
		}
		e.TraversalsX100 = int64(math.Floor(float64(e.TraversalsX100) * (1 - float64(ratePercent)/100)))
		if e.TraversalsX100 > 0 {
			kept = append(kept, e)
		}
	}
	cell.congestion = kept
}

// EvaporatePathCongestion scales only pathNum's congestion entries by
// (1 - ratePercent/100), grid-wide, leaving every other path's deposits
// untouched. Used by the diff-pair sub-map optimizer (spec §4.6 step b:
// "Evaporate 10% of the two children's congestion only"), which must not
// disturb the rest of the sub-map's copied congestion state between its
// own trial iterations.
func (g *Grid) EvaporatePathCongestion(ctx context.Context, pathNum int, ratePercent int64) error {
	grp, _ := errgroup.WithContext(ctx)
	for z := 0; z < g.Layers; z++ {
		z := z
		grp.Go(func() error {
			for y := 0; y < g.Height; y++ {
				for x := 0; x < g.Width; x++ {
					c := geometry.Coordinate{X: x, Y: y, Z: z}
					cell := g.At(c)
					if len(cell.congestion) == 0 {
						continue
					}
					kept := cell.congestion[:0]
					for _, e := range cell.congestion {
						if e.PathNum == pathNum {
							e.TraversalsX100 = int64(math.Floor(float64(e.TraversalsX100) * (1 - float64(ratePercent)/100)))
							if e.TraversalsX100 <= 0 {
								continue
							}
						}
						kept = append(kept, e)
					}
					cell.congestion = kept
				}
			}
			return nil
		})
	}
	return grp.Wait()
}

// AddCongestionAroundPoint deposits amount of congestion, tagged
// (path, subset, shape), to every in-bounds, non-swap-zone cell within
// radiusCells (Euclidean, measured in the XY plane at center.Z) of center.
// This is addCongestionAroundPoint_withSubsetAndShapeType from spec §4.2.
func (g *Grid) AddCongestionAroundPoint(center geometry.Coordinate, path, subset int, shape geometry.ShapeType, radiusCells int, amount int64) error {
	r2 := radiusCells * radiusCells
	for dy := -radiusCells; dy <= radiusCells; dy++ {
		for dx := -radiusCells; dx <= radiusCells; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			c := geometry.Coordinate{X: center.X + dx, Y: center.Y + dy, Z: center.Z}
			if !g.InBounds(c) {
				continue
			}
			if g.At(c).SwapZone {
				continue
			}
			if err := g.AddCongestion(c, path, subset, shape, amount); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddCongestionAroundTerminal looks up the design-rule radius for subset
// and shape at center, then deposits via AddCongestionAroundPoint. A
// terminal cell that itself lies in a pin-swap zone is skipped entirely,
// per spec §4.4 step 3.
func (g *Grid) AddCongestionAroundTerminal(center geometry.Coordinate, path, subset int, shape geometry.ShapeType, amount int64) error {
	if !g.InBounds(center) {
		return ErrOutOfBounds
	}
	if g.At(center).SwapZone {
		return nil
	}
	if g.rules == nil {
		return ErrNoDesignRuleRadius
	}
	radius, ok := g.rules.RadiusCells(g.At(center).DesignRuleSet, subset, shape)
	if !ok {
		return ErrNoDesignRuleRadius
	}
	return g.AddCongestionAroundPoint(center, path, subset, shape, radius, amount)
}

// SwapCongestionPaths is convertCongestionAtCell: it relabels every
// congestion entry and path-center entry at c tagged pathA to pathB and
// vice versa, leaving every other path's entries untouched. Used when
// diff-pair re-stitching exchanges a pseudo-path's start terminals,
// keeping the congestion history consistent with the swapped assignment.
func (g *Grid) SwapCongestionPaths(c geometry.Coordinate, pathA, pathB int) error {
	cell, err := g.CellAt(c)
	if err != nil {
		return err
	}
	for i := range cell.congestion {
		switch cell.congestion[i].PathNum {
		case pathA:
			cell.congestion[i].PathNum = pathB
		case pathB:
			cell.congestion[i].PathNum = pathA
		}
	}
	for i := range cell.centers {
		switch cell.centers[i].Path {
		case pathA:
			cell.centers[i].Path = pathB
		case pathB:
			cell.centers[i].Path = pathA
		}
	}
	return nil
}

// AddPathCenterInfo appends a (path, shape) entry to c's path-center list
// unless an identical one is already present.
func (g *Grid) AddPathCenterInfo(c geometry.Coordinate, path int, shape geometry.ShapeType) error {
	cell, err := g.CellAt(c)
	if err != nil {
		return err
	}
	for _, e := range cell.centers {
		if e.Path == path && e.Shape == shape {
			return nil
		}
	}
	cell.centers = append(cell.centers, PathCenterEntry{Path: path, Shape: shape})
	switch shape {
	case geometry.ShapeTrace:
		cell.CenterlineTrace = true
	case geometry.ShapeViaUp:
		cell.CenterlineViaUp = true
	case geometry.ShapeViaDown:
		cell.CenterlineViaDown = true
	}
	return nil
}

// PathCentersAt returns c's path-center list.
func (g *Grid) PathCentersAt(c geometry.Coordinate) []PathCenterEntry {
	if !g.InBounds(c) {
		return nil
	}
	return g.At(c).centers
}

// CongestionEntriesAt returns c's sparse congestion list (read-only use by
// callers outside the package, e.g. the congestion-memory diff-pair test).
func (g *Grid) CongestionEntriesAt(c geometry.Coordinate) []geometry.CongestionEntry {
	if !g.InBounds(c) {
		return nil
	}
	return g.At(c).congestion
}
