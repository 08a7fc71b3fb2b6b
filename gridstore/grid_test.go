package gridstore_test

import (
	"testing"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

type fakeRules struct{}

func (fakeRules) CostMultiplierX100(idx int) int64 {
	if idx == 1 {
		return 200
	}
	return 100
}

func (fakeRules) RadiusCells(ruleSet, subset int, shape geometry.ShapeType) (int, bool) {
	return 3, true
}

func TestNewGrid_RejectsZeroDimension(t *testing.T) {
	if _, err := gridstore.NewGrid(0, 5, 1, fakeRules{}, -1); err != gridstore.ErrZeroDimension {
		t.Fatalf("got %v, want ErrZeroDimension", err)
	}
}

func TestGrid_WalkableRespectsForbidBits(t *testing.T) {
	g, err := gridstore.NewGrid(4, 4, 1, fakeRules{}, -1)
	if err != nil {
		t.Fatal(err)
	}
	c := geometry.Coordinate{X: 1, Y: 1, Z: 0}
	if !g.Walkable(c, geometry.ShapeTrace) {
		t.Fatal("fresh cell should be walkable")
	}
	g.At(c).ForbidTrace = true
	if g.Walkable(c, geometry.ShapeTrace) {
		t.Fatal("cell with ForbidTrace should not be walkable for TRACE")
	}
	if !g.Walkable(c, geometry.ShapeViaUp) {
		t.Fatal("ForbidTrace should not block VIA_UP")
	}
}

func TestGrid_WalkableOutOfBounds(t *testing.T) {
	g, _ := gridstore.NewGrid(2, 2, 1, fakeRules{}, -1)
	if g.Walkable(geometry.Coordinate{X: 5, Y: 0, Z: 0}, geometry.ShapeTrace) {
		t.Fatal("out-of-bounds cell should not be walkable")
	}
}

func TestGrid_CostMultiplierUsesDesignRules(t *testing.T) {
	g, _ := gridstore.NewGrid(2, 2, 1, fakeRules{}, -1)
	c := geometry.Coordinate{X: 0, Y: 0, Z: 0}
	g.At(c).TraceMultIdx = 1
	if got := g.CostMultiplier(c, geometry.ShapeTrace); got != 200 {
		t.Errorf("got %d, want 200", got)
	}
}

func TestGrid_ImplementsGeometryViews(t *testing.T) {
	var _ geometry.CellView = (*gridstore.Grid)(nil)
	var _ geometry.CongestionView = (*gridstore.Grid)(nil)
}
