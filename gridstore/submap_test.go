package gridstore_test

import (
	"testing"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

func TestSubMap_CopiesCellsAndExcludesPaths(t *testing.T) {
	g, _ := gridstore.NewGrid(10, 10, 1, fakeRules{}, -1)
	keep := geometry.Coordinate{X: 3, Y: 3, Z: 0}
	_ = g.AddCongestion(keep, 0, 0, geometry.ShapeTrace, 100)
	_ = g.AddCongestion(keep, 1, 0, geometry.ShapeTrace, 100)
	_ = g.AddPathCenterInfo(keep, 1, geometry.ShapeTrace)

	sub, err := g.SubMap(2, 2, 5, 5, map[int]bool{1: true})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Width != 4 || sub.Height != 4 {
		t.Fatalf("got %dx%d, want 4x4", sub.Width, sub.Height)
	}

	localKeep := sub.FromParent(keep)
	entries := sub.CongestionEntriesAt(localKeep)
	if len(entries) != 1 || entries[0].PathNum != 0 {
		t.Fatalf("got %v, want only path 0's congestion carried over", entries)
	}
	if len(sub.PathCentersAt(localKeep)) != 0 {
		t.Fatal("excluded path's path-center entry should have been dropped")
	}
	if got := sub.ToParent(localKeep); got != keep {
		t.Fatalf("got %v, want round-trip back to %v", got, keep)
	}
}
