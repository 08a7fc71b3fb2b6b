package metrics

import (
	"math"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

// DRCRules resolves the minimum legal spacing, in cells, between two
// design-rule subsets for a pair of shape types at a given design-rule set.
// Ingestion (out of scope per spec §1) supplies the implementation; this
// package only ever reads from it.
type DRCRules interface {
	MinSpacingCells(ruleSet, subsetA, subsetB int, shapeA, shapeB geometry.ShapeType) (cells int, ok bool)
}

// SubsetResolver maps a path number to the design-rule subset it routes
// under. Matches congestion.SubsetResolver's shape so the same caller-owned
// implementation can satisfy both without this package importing congestion.
type SubsetResolver interface {
	SubsetFor(pathNum int) int
}

func drcFlagFor(a, b geometry.ShapeType) gridstore.DRCFlag {
	trace := func(s geometry.ShapeType) bool { return s == geometry.ShapeTrace }
	via := func(s geometry.ShapeType) bool { return s == geometry.ShapeViaUp || s == geometry.ShapeViaDown }
	switch {
	case trace(a) && trace(b):
		return gridstore.DRCTraceTrace
	case via(a) && via(b):
		return gridstore.DRCViaVia
	default:
		return gridstore.DRCTraceVia
	}
}

// Result is DetectDRCs' full per-iteration findings: the crossing matrix
// plus per-path and per-(path,layer) distinct DRC cell counts.
type Result struct {
	Ledger          *DRCLedger
	PathDRCCells    []int   // indexed by path number
	PathDRCByLayer  [][]int // [path][layer]
	TotalDRCCells   int
	TraceTraceCells int
	ViaViaCells     int
	TraceViaCells   int
}

// DetectDRCs scans grid for cells where two path centerlines lie closer
// together than their design rules allow, per spec §4.5: "Two paths
// conflict on a cell if their centerlines are within the design-rule
// spacing for the relevant shape-type pair at that cell." maxSearchRadius
// bounds how far DetectDRCs looks from any occupied cell for a conflicting
// neighbor; it should be at least the largest MinSpacingCells the rules
// table can return, since nothing further away can ever violate spacing.
//
// DetectDRCs clears and rewrites grid's DRC flags itself, so callers must
// not interleave it with a stale ClearDRC/SetDRC sequence of their own.
func DetectDRCs(grid *gridstore.Grid, rules DRCRules, subsets SubsetResolver, numPaths, maxSearchRadius int) Result {
	grid.ClearDRC()

	res := Result{
		Ledger:         NewDRCLedger(numPaths),
		PathDRCCells:   make([]int, numPaths),
		PathDRCByLayer: make([][]int, numPaths),
	}
	for p := range res.PathDRCByLayer {
		res.PathDRCByLayer[p] = make([]int, grid.Layers)
	}

	seenPathAtCell := make(map[geometry.Coordinate]map[int]bool)

	markCell := func(c geometry.Coordinate, p int, flag gridstore.DRCFlag) {
		_ = grid.SetDRC(c, flag)
		if seenPathAtCell[c] == nil {
			seenPathAtCell[c] = make(map[int]bool)
		}
		if !seenPathAtCell[c][p] {
			seenPathAtCell[c][p] = true
			res.PathDRCCells[p]++
			res.PathDRCByLayer[p][c.Z]++
		}
	}

	r2 := maxSearchRadius * maxSearchRadius
	for z := 0; z < grid.Layers; z++ {
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				c := geometry.Coordinate{X: x, Y: y, Z: z}
				entries := grid.PathCentersAt(c)
				if len(entries) == 0 {
					continue
				}
				for dy := -maxSearchRadius; dy <= maxSearchRadius; dy++ {
					for dx := -maxSearchRadius; dx <= maxSearchRadius; dx++ {
						if dx*dx+dy*dy > r2 {
							continue
						}
						c2 := geometry.Coordinate{X: x + dx, Y: y + dy, Z: z}
						if !grid.InBounds(c2) {
							continue
						}
						// Only examine each unordered cell pair once: process
						// c2 > c lexicographically, or c2 == c (co-located).
						if !(c2 == c) && !after(c, c2) {
							continue
						}
						others := grid.PathCentersAt(c2)
						if len(others) == 0 {
							continue
						}
						dist := euclidDist(dx, dy)
						for i, e1 := range entries {
							for j, e2 := range others {
								if c2 == c && j <= i {
									continue // don't pair a cell with itself or double-count
								}
								ruleSet := grid.DesignRuleSetAt(c)
								subsetA, subsetB := subsets.SubsetFor(e1.Path), subsets.SubsetFor(e2.Path)
								minSpacing, ok := rules.MinSpacingCells(ruleSet, subsetA, subsetB, e1.Shape, e2.Shape)
								if !ok || dist >= float64(minSpacing) {
									continue
								}
								res.Ledger.Record(e1.Path, e2.Path)
								flag := drcFlagFor(e1.Shape, e2.Shape)
								switch flag {
								case gridstore.DRCTraceTrace:
									res.TraceTraceCells++
								case gridstore.DRCViaVia:
									res.ViaViaCells++
								default:
									res.TraceViaCells++
								}
								markCell(c, e1.Path, flag)
								markCell(c2, e2.Path, flag)
							}
						}
					}
				}
			}
		}
	}

	for _, n := range res.PathDRCCells {
		res.TotalDRCCells += n
	}
	return res
}

// after reports whether b comes strictly after a in row-major (z,y,x)
// order, used to visit each unordered cell pair exactly once.
func after(a, b geometry.Coordinate) bool {
	if a.Z != b.Z {
		return b.Z > a.Z
	}
	if a.Y != b.Y {
		return b.Y > a.Y
	}
	return b.X > a.X
}

func euclidDist(dx, dy int) float64 {
	fx, fy := float64(dx), float64(dy)
	return math.Sqrt(fx*fx + fy*fy)
}
