package gridstore_test

import (
	"context"
	"testing"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

func TestMarkCellsNearCenterlines_FlagsWithinRadius(t *testing.T) {
	g, _ := gridstore.NewGrid(5, 5, 1, fakeRules{}, -1)
	center := geometry.Coordinate{X: 2, Y: 2, Z: 0}

	err := g.MarkCellsNearCenterlines(context.Background(), map[int][]geometry.Coordinate{
		0: {center},
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !g.NearANetAt(center) {
		t.Error("center cell should be flagged near-a-net")
	}
	if !g.NearANetAt(geometry.Coordinate{X: 3, Y: 2, Z: 0}) {
		t.Error("lateral neighbor within radius 1 should be flagged")
	}
	if g.NearANetAt(geometry.Coordinate{X: 0, Y: 0, Z: 0}) {
		t.Error("far corner should not be flagged")
	}
}

func TestSetDRC_AccumulatesAndClears(t *testing.T) {
	g, _ := gridstore.NewGrid(3, 3, 1, fakeRules{}, -1)
	c := geometry.Coordinate{X: 1, Y: 1, Z: 0}

	_ = g.SetDRC(c, gridstore.DRCTraceTrace)
	_ = g.SetDRC(c, gridstore.DRCViaVia)
	if got := g.DRCAt(c); !got.Has(gridstore.DRCTraceTrace) || !got.Has(gridstore.DRCViaVia) {
		t.Fatalf("got %v, want both TraceTrace and ViaVia bits set", got)
	}

	g.ClearDRC()
	if got := g.DRCAt(c); got != 0 {
		t.Fatalf("got %v after ClearDRC, want 0", got)
	}
}
