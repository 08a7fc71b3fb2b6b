package congestion_test

import (
	"context"
	"testing"

	"github.com/acorn-router/acorn/congestion"
	"github.com/acorn-router/acorn/geometry"
)

func straightPath(y int) []geometry.Coordinate {
	return []geometry.Coordinate{
		{X: 0, Y: y, Z: 0}, {X: 1, Y: y, Z: 0}, {X: 2, Y: y, Z: 0},
	}
}

func TestRun_DepositsCenterlineCongestion(t *testing.T) {
	grid := newTestGrid(t, 10, 10, 1)
	paths := []congestion.RoutedPath{
		{PathNum: 1, Subset: 0, Shape: geometry.ShapeTrace, Cells: straightPath(5)},
	}

	if err := congestion.Run(context.Background(), grid, paths, nil, 100, 100); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mid := geometry.Coordinate{X: 1, Y: 5, Z: 0}
	found := false
	for _, e := range grid.CongestionEntriesAt(mid) {
		if e.PathNum == 1 && e.Shape == geometry.ShapeTrace {
			found = true
		}
	}
	if !found {
		t.Error("expected a trace congestion entry for path 1 at the centerline cell")
	}

	centers := grid.PathCentersAt(mid)
	if len(centers) != 1 || centers[0].Path != 1 {
		t.Errorf("got centers %+v, want one entry for path 1", centers)
	}
}

func TestRun_DepositsTerminalCongestionAroundEndpoints(t *testing.T) {
	grid := newTestGrid(t, 10, 10, 1)
	paths := []congestion.RoutedPath{
		{PathNum: 1, Subset: 0, Shape: geometry.ShapeTrace, Cells: straightPath(5)},
	}

	if err := congestion.Run(context.Background(), grid, paths, nil, 100, 100); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// fakeRules.RadiusCells returns 2, so the terminal at (0,5,0) should
	// spread congestion to cells within radius 2, e.g. (0,6,0).
	neighbor := geometry.Coordinate{X: 0, Y: 6, Z: 0}
	if len(grid.CongestionEntriesAt(neighbor)) == 0 {
		t.Error("expected terminal congestion to spread beyond the centerline cell itself")
	}
}

func TestRun_EvaporatesBeforeDepositing(t *testing.T) {
	grid := newTestGrid(t, 10, 10, 1)
	stale := geometry.Coordinate{X: 8, Y: 8, Z: 0}
	if err := grid.AddCongestion(stale, 99, 0, geometry.ShapeTrace, 10); err != nil {
		t.Fatalf("AddCongestion: %v", err)
	}

	if err := congestion.Run(context.Background(), grid, nil, nil, 100, 100); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// DefaultEvapRatePercent=10 applied to TraversalsX100=10 floors to 9,
	// which still survives; run again enough times and it reaches zero.
	for i := 0; i < 50; i++ {
		if err := congestion.Run(context.Background(), grid, nil, nil, 100, 100); err != nil {
			t.Fatalf("Run: %v", err)
		}
	}
	if len(grid.CongestionEntriesAt(stale)) != 0 {
		t.Error("expected repeated evaporation to clear a stale entry")
	}
}

func TestRun_PseudoViaDepositsExtraTraceRepulsion(t *testing.T) {
	grid := newTestGrid(t, 10, 10, 1)
	site := geometry.Coordinate{X: 5, Y: 5, Z: 0}
	pseudo := []congestion.PseudoVia{
		{PathNum: 1, Subset: 0, Site: site, Amount: 500},
	}

	if err := congestion.Run(context.Background(), grid, nil, pseudo, 100, 100); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(grid.CongestionEntriesAt(site)) == 0 {
		t.Error("expected pseudo-via repulsion to deposit congestion at the flagged site")
	}
}

func TestRun_CenterlineRecordsViaShapeAtLayerChange(t *testing.T) {
	grid := newTestGrid(t, 5, 5, 2)
	path := []geometry.Coordinate{
		{X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1},
	}
	paths := []congestion.RoutedPath{
		{PathNum: 3, Subset: 0, Shape: geometry.ShapeTrace, Cells: path},
	}

	if err := congestion.Run(context.Background(), grid, paths, nil, 100, 100); err != nil {
		t.Fatalf("Run: %v", err)
	}

	up := geometry.Coordinate{X: 1, Y: 1, Z: 1}
	centers := grid.PathCentersAt(up)
	if len(centers) != 1 || centers[0].Shape != geometry.ShapeViaUp {
		t.Errorf("got centers %+v, want a single ShapeViaUp entry", centers)
	}
}
