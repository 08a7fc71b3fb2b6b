package metrics_test

import (
	"testing"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
	"github.com/acorn-router/acorn/metrics"
)

type staticSubset int

func (s staticSubset) SubsetFor(int) int { return int(s) }

type flatRules struct {
	spacing int
}

func (r flatRules) MinSpacingCells(ruleSet, subsetA, subsetB int, shapeA, shapeB geometry.ShapeType) (int, bool) {
	return r.spacing, true
}

type fakeGridRules struct{}

func (fakeGridRules) CostMultiplierX100(int) int64                        { return 100 }
func (fakeGridRules) RadiusCells(int, int, geometry.ShapeType) (int, bool) { return 1, true }

func TestDetectDRCs_CoLocatedCentersConflict(t *testing.T) {
	g, err := gridstore.NewGrid(5, 5, 1, fakeGridRules{}, -1)
	if err != nil {
		t.Fatal(err)
	}
	c := geometry.Coordinate{X: 2, Y: 2, Z: 0}
	_ = g.AddPathCenterInfo(c, 0, geometry.ShapeTrace)
	_ = g.AddPathCenterInfo(c, 1, geometry.ShapeTrace)

	res := metrics.DetectDRCs(g, flatRules{spacing: 2}, staticSubset(0), 2, 3)

	if res.Ledger.Count(0, 1) != 1 {
		t.Fatalf("got %d crossings between path 0 and 1, want 1", res.Ledger.Count(0, 1))
	}
	if res.PathDRCCells[0] != 1 || res.PathDRCCells[1] != 1 {
		t.Fatalf("got PathDRCCells %v, want [1 1]", res.PathDRCCells)
	}
	if !g.DRCAt(c).Has(gridstore.DRCTraceTrace) {
		t.Fatal("expected the co-located cell to be flagged DRCTraceTrace")
	}
}

func TestDetectDRCs_DistantCentersDoNotConflict(t *testing.T) {
	g, _ := gridstore.NewGrid(10, 10, 1, fakeGridRules{}, -1)
	_ = g.AddPathCenterInfo(geometry.Coordinate{X: 0, Y: 0, Z: 0}, 0, geometry.ShapeTrace)
	_ = g.AddPathCenterInfo(geometry.Coordinate{X: 9, Y: 9, Z: 0}, 1, geometry.ShapeTrace)

	res := metrics.DetectDRCs(g, flatRules{spacing: 2}, staticSubset(0), 2, 3)

	if res.TotalDRCCells != 0 {
		t.Fatalf("got %d DRC cells, want 0 for two far-apart centerlines", res.TotalDRCCells)
	}
}

func TestBestIteration_PrefersDRCFreeOverLowerCostWithDRCs(t *testing.T) {
	h := metrics.NewHistory(1, 1)
	h.Append(metrics.Snapshot{Iteration: 1, NonPseudoNumDRCCells: 0, TotalNonPseudoCost: 500})
	h.Append(metrics.Snapshot{Iteration: 2, NonPseudoNumDRCCells: 2, TotalNonPseudoCost: 100})

	best, ok := metrics.BestIteration(h, false)
	if !ok || best != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", best, ok)
	}
}

func TestBestIteration_SkipsIterationOneWithUserMultipliers(t *testing.T) {
	h := metrics.NewHistory(1, 1)
	h.Append(metrics.Snapshot{Iteration: 1, NonPseudoNumDRCCells: 0, TotalNonPseudoCost: 1})
	h.Append(metrics.Snapshot{Iteration: 2, NonPseudoNumDRCCells: 0, TotalNonPseudoCost: 500})

	best, ok := metrics.BestIteration(h, true)
	if !ok || best != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", best, ok)
	}
}

func TestBestIteration_NoDRCFreeIterationPicksFewestDRCCells(t *testing.T) {
	h := metrics.NewHistory(1, 1)
	h.Append(metrics.Snapshot{Iteration: 1, NonPseudoNumDRCCells: 5, TotalNonPseudoCost: 10})
	h.Append(metrics.Snapshot{Iteration: 2, NonPseudoNumDRCCells: 2, TotalNonPseudoCost: 999})

	best, ok := metrics.BestIteration(h, false)
	if !ok || best != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", best, ok)
	}
}
