package gridstore

import "github.com/acorn-router/acorn/geometry"

// SubMap builds an independent grid holding a deep copy of the rectangular
// prism between (lowX,lowY) and (highX,highY) across every layer, per spec
// §3: "a sub-map is an independent grid that borrows (by deep copy at
// construction) a rectangular prism of cells from the parent grid minus the
// two diff-pair nets being optimized." excludePaths names the path numbers
// (the two diff-pair children) whose congestion and path-center entries are
// dropped rather than copied; every other static attribute and sparse list
// entry is carried over unchanged. The returned grid's Origin records
// (lowX, lowY, 0) so callers can translate parent <-> sub-map coordinates.
func (g *Grid) SubMap(lowX, lowY, highX, highY int, excludePaths map[int]bool) (*Grid, error) {
	if lowX < 0 {
		lowX = 0
	}
	if lowY < 0 {
		lowY = 0
	}
	if highX >= g.Width {
		highX = g.Width - 1
	}
	if highY >= g.Height {
		highY = g.Height - 1
	}
	width, height := highX-lowX+1, highY-lowY+1
	if width <= 0 || height <= 0 {
		return nil, ErrZeroDimension
	}

	sub, err := NewGrid(width, height, g.Layers, g.rules, g.universalRepellent)
	if err != nil {
		return nil, err
	}
	sub.Origin = geometry.Coordinate{X: lowX, Y: lowY, Z: 0}

	for z := 0; z < g.Layers; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				src := g.At(geometry.Coordinate{X: lowX + x, Y: lowY + y, Z: z})
				dst := sub.At(geometry.Coordinate{X: x, Y: y, Z: z})
				*dst = *src
				dst.congestion = filterByPath(src.congestion, excludePaths)
				dst.centers = filterCenters(src.centers, excludePaths)
				dst.scratch = scratch{heapIndex: -1}
			}
		}
	}
	return sub, nil
}

func filterByPath(entries []geometry.CongestionEntry, exclude map[int]bool) []geometry.CongestionEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]geometry.CongestionEntry, 0, len(entries))
	for _, e := range entries {
		if exclude[e.PathNum] {
			continue
		}
		out = append(out, e)
	}
	return out
}

func filterCenters(entries []PathCenterEntry, exclude map[int]bool) []PathCenterEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]PathCenterEntry, 0, len(entries))
	for _, e := range entries {
		if exclude[e.Path] {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ToParent translates a coordinate in this (sub-map) grid's frame back into
// the parent grid's frame.
func (g *Grid) ToParent(c geometry.Coordinate) geometry.Coordinate {
	return geometry.Coordinate{X: c.X + g.Origin.X, Y: c.Y + g.Origin.Y, Z: c.Z + g.Origin.Z}
}

// FromParent translates a parent-grid coordinate into this sub-map's frame.
// The caller must check InBounds on the result before using it.
func (g *Grid) FromParent(c geometry.Coordinate) geometry.Coordinate {
	return geometry.Coordinate{X: c.X - g.Origin.X, Y: c.Y - g.Origin.Y, Z: c.Z - g.Origin.Z}
}

// ForbidCell marks c impassable to every shape, used by the diff-pair
// optimizer to treat a child's out-of-region trace as a hard obstacle
// inside a sub-map (spec §4.6 step 4: "additionally forbid the cells
// traversed by the two children outside this region").
func (g *Grid) ForbidCell(c geometry.Coordinate) error {
	cell, err := g.CellAt(c)
	if err != nil {
		return err
	}
	cell.ForbidTrace = true
	cell.ForbidViaUp = true
	cell.ForbidViaDown = true
	return nil
}
