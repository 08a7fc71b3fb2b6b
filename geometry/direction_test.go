package geometry_test

import (
	"testing"

	"github.com/acorn-router/acorn/geometry"
)

// TestCalcMinimumAllowedDirection_Laws exercises the three laws the spec
// names explicitly: identity against ANY, absorption by NONE, and the
// MANHATTAN / X_ROUTING restrictive-intersection case.
func TestCalcMinimumAllowedDirection_Laws(t *testing.T) {
	cases := []struct {
		name     string
		a, b     geometry.DirMask
		expected geometry.DirMask
	}{
		{"identity with ANY", geometry.DirManhattan, geometry.DirAny, geometry.DirManhattan},
		{"absorbed by NONE", geometry.DirManhattan, geometry.DirNone, geometry.DirNone},
		{"restrictive intersection", geometry.DirManhattan, geometry.DirXRouting, geometry.DirUpDown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := geometry.CalcMinimumAllowedDirection(c.a, c.b); got != c.expected {
				t.Errorf("CalcMinimumAllowedDirection(%#x, %#x) = %#x; want %#x", uint32(c.a), uint32(c.b), uint32(got), uint32(c.expected))
			}
		})
	}
}

// TestCalcMinimumAllowedDirection_ZeroIntersectionIsUnion verifies the
// "contradictory inputs" branch: when a and b share no bits and neither is
// NONE, the union (not NONE) is returned.
func TestCalcMinimumAllowedDirection_ZeroIntersectionIsUnion(t *testing.T) {
	a := geometry.DirUpDown
	b := geometry.DirAnyLateral
	got := geometry.CalcMinimumAllowedDirection(a, b)
	want := a | b
	if got != want {
		t.Errorf("got %#x, want union %#x", uint32(got), uint32(want))
	}
}

func TestAllowedDirection(t *testing.T) {
	if !geometry.AllowedDirection(1, 0, 0, geometry.DirAnyLateral) {
		t.Error("east should be allowed under ANY_LATERAL")
	}
	if geometry.AllowedDirection(0, 0, 1, geometry.DirAnyLateral) {
		t.Error("vertical move should not be allowed under ANY_LATERAL")
	}
	if geometry.AllowedDirection(2, 2, 0, geometry.DirAny) {
		t.Error("(2,2,0) is not one of the 18 canonical lattice moves")
	}
	if !geometry.AllowedDirection(2, 1, 0, geometry.DirAny) {
		t.Error("knight move (2,1,0) should be allowed under ANY")
	}
}

func TestDirectionString(t *testing.T) {
	if got := geometry.DirNE.String(); got != "NE" {
		t.Errorf("DirNE.String() = %q, want NE", got)
	}
	if got := geometry.DirNxNE.String(); got != "NxNE" {
		t.Errorf("DirNxNE.String() = %q, want NxNE", got)
	}
}

func TestCornerCells(t *testing.T) {
	from := geometry.Coordinate{X: 0, Y: 0, Z: 0}

	diag := geometry.CornerCells(from, geometry.Coordinate{X: 1, Y: -1, Z: 0})
	if len(diag) != 1 {
		t.Fatalf("diagonal move should have 1 corner cell, got %d", len(diag))
	}

	knight := geometry.CornerCells(from, geometry.Coordinate{X: 1, Y: -2, Z: 0})
	if len(knight) != 2 {
		t.Fatalf("knight move should have 2 corner cells, got %d", len(knight))
	}

	lateral := geometry.CornerCells(from, geometry.Coordinate{X: 1, Y: 0, Z: 0})
	if len(lateral) != 0 {
		t.Fatalf("lateral move should have 0 corner cells, got %d", len(lateral))
	}
}
