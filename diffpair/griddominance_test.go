package diffpair_test

import (
	"testing"

	"github.com/acorn-router/acorn/diffpair"
	"github.com/acorn-router/acorn/geometry"
)

func TestGridDominance_ReportsHeavierDeposit(t *testing.T) {
	grid := newTestGrid(t, 5, 5, 1)
	center := geometry.Coordinate{X: 2, Y: 2, Z: 0}

	if err := grid.AddCongestion(center, 1, 0, geometry.ShapeTrace, 300); err != nil {
		t.Fatalf("AddCongestion: %v", err)
	}
	if err := grid.AddCongestion(center, 2, 0, geometry.ShapeTrace, 100); err != nil {
		t.Fatalf("AddCongestion: %v", err)
	}

	dom := diffpair.GridDominance{Grid: grid}
	child, ok := dom.DominantChild(center, 1, 1, 2)
	if !ok {
		t.Fatal("expected a dominance reading where both children have deposits")
	}
	if child != 1 {
		t.Errorf("got dominant child %d, want 1 (heavier deposit)", child)
	}
}

func TestGridDominance_NoDepositsIsInconclusive(t *testing.T) {
	grid := newTestGrid(t, 5, 5, 1)
	center := geometry.Coordinate{X: 2, Y: 2, Z: 0}

	dom := diffpair.GridDominance{Grid: grid}
	_, ok := dom.DominantChild(center, 1, 1, 2)
	if ok {
		t.Error("expected ok=false when neither child has deposited any congestion")
	}
}
