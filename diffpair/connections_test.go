package diffpair_test

import (
	"testing"

	"github.com/acorn-router/acorn/diffpair"
	"github.com/acorn-router/acorn/geometry"
)

func TestDetectConnections_SplitsAtPseudoVias(t *testing.T) {
	// Centerline: start -> via (Z changes 0->1) -> end. Two connections.
	centerline := []geometry.Coordinate{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1},
	}
	child1 := []geometry.Coordinate{
		{X: 0, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 1}, {X: 2, Y: -1, Z: 1},
	}
	child2 := []geometry.Coordinate{
		{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 1, Z: 1},
	}
	isVia := func(idx int) bool { return idx == 1 }

	conns, err := diffpair.DetectConnections(centerline, child1, child2, isVia, nil, nil)
	if err != nil {
		t.Fatalf("DetectConnections: %v", err)
	}
	if len(conns) != 2 {
		t.Fatalf("got %d connections, want 2 (split at the pseudo-via)", len(conns))
	}
	if conns[0].EndSegIdx1 != 1 || conns[1].StartSegIdx1 != 1 {
		t.Errorf("got conns %+v, want the via index (1) shared between both connections", conns)
	}
	if conns[0].EndShape1 != geometry.ShapeViaUp {
		t.Errorf("got end shape %v at the via, want ShapeViaUp (Z increases 0->1)", conns[0].EndShape1)
	}
}

func TestDetectConnections_NoVias_SingleConnection(t *testing.T) {
	centerline := []geometry.Coordinate{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}
	child1 := []geometry.Coordinate{{X: 0, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 2, Y: -1, Z: 0}}
	child2 := []geometry.Coordinate{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 2, Y: 1, Z: 0}}

	conns, err := diffpair.DetectConnections(centerline, child1, child2, func(int) bool { return false }, nil, nil)
	if err != nil {
		t.Fatalf("DetectConnections: %v", err)
	}
	if len(conns) != 1 {
		t.Fatalf("got %d connections, want 1", len(conns))
	}
	if conns[0].StartSegIdx1 != 0 || conns[0].EndSegIdx1 != 2 {
		t.Errorf("got conn %+v, want it to span the whole centerline", conns[0])
	}
}

func TestDetectConnections_MismatchedLengths(t *testing.T) {
	centerline := []geometry.Coordinate{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	child1 := []geometry.Coordinate{{X: 0, Y: -1, Z: 0}}

	_, err := diffpair.DetectConnections(centerline, child1, child1, func(int) bool { return false }, nil, nil)
	if err != diffpair.ErrMisalignedChildren {
		t.Errorf("got %v, want ErrMisalignedChildren", err)
	}
}
