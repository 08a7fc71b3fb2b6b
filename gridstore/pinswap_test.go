package gridstore_test

import (
	"sort"
	"testing"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

func TestConnectedPinSwapRegion_NonSwapZoneIsJustItself(t *testing.T) {
	g, _ := gridstore.NewGrid(3, 3, 1, fakeRules{}, -1)
	start := geometry.Coordinate{X: 1, Y: 1, Z: 0}

	region, err := g.ConnectedPinSwapRegion(start)
	if err != nil {
		t.Fatal(err)
	}
	if len(region) != 1 || region[0] != start {
		t.Fatalf("got %v, want [%v]", region, start)
	}
}

func TestConnectedPinSwapRegion_FloodFillsSameZoneID(t *testing.T) {
	g, _ := gridstore.NewGrid(5, 5, 1, fakeRules{}, -1)
	zone := []geometry.Coordinate{
		{X: 1, Y: 1, Z: 0}, {X: 1, Y: 2, Z: 0}, {X: 2, Y: 2, Z: 0},
	}
	other := geometry.Coordinate{X: 4, Y: 4, Z: 0}
	_ = g.MarkSwapZone(zone, 1)
	_ = g.MarkSwapZone([]geometry.Coordinate{other}, 2)

	region, err := g.ConnectedPinSwapRegion(zone[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(region) != len(zone) {
		t.Fatalf("got %d cells, want %d", len(region), len(zone))
	}

	sort.Slice(region, func(i, j int) bool {
		if region[i].X != region[j].X {
			return region[i].X < region[j].X
		}
		return region[i].Y < region[j].Y
	})
	want := append([]geometry.Coordinate(nil), zone...)
	sort.Slice(want, func(i, j int) bool {
		if want[i].X != want[j].X {
			return want[i].X < want[j].X
		}
		return want[i].Y < want[j].Y
	})
	for i := range want {
		if region[i] != want[i] {
			t.Fatalf("got %v, want %v", region, want)
		}
	}
}

func TestConnectedPinSwapRegion_DoesNotCrossDiagonalGaps(t *testing.T) {
	g, _ := gridstore.NewGrid(5, 5, 1, fakeRules{}, -1)
	a := geometry.Coordinate{X: 0, Y: 0, Z: 0}
	b := geometry.Coordinate{X: 1, Y: 1, Z: 0} // diagonal neighbor, not lateral
	_ = g.MarkSwapZone([]geometry.Coordinate{a, b}, 1)

	region, err := g.ConnectedPinSwapRegion(a)
	if err != nil {
		t.Fatal(err)
	}
	if len(region) != 1 {
		t.Fatalf("diagonal-only adjacency should not flood-fill, got %d cells", len(region))
	}
}

func TestMarkSwapZone_ClearsExistingCongestion(t *testing.T) {
	g, _ := gridstore.NewGrid(3, 3, 1, fakeRules{}, -1)
	c := geometry.Coordinate{X: 1, Y: 1, Z: 0}
	_ = g.AddCongestion(c, 0, 0, geometry.ShapeTrace, 100)

	if err := g.MarkSwapZone([]geometry.Coordinate{c}, 5); err != nil {
		t.Fatal(err)
	}
	if got := len(g.CongestionEntriesAt(c)); got != 0 {
		t.Errorf("entering a swap zone should clear congestion, got %d entries", got)
	}
}
