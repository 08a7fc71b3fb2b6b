package geometry

// Coordinate is an integer (X, Y, Z) cell index; Z is the routing layer.
type Coordinate struct {
	X, Y, Z int
}

// Add returns c shifted by delta.
func (c Coordinate) Add(d Delta) Coordinate {
	return Coordinate{X: c.X + d.DX, Y: c.Y + d.DY, Z: c.Z + d.DZ}
}

// Sub returns the delta from other to c (c - other).
func (c Coordinate) Sub(other Coordinate) Delta {
	return Delta{DX: c.X - other.X, DY: c.Y - other.Y, DZ: c.Z - other.Z}
}

// ShapeType distinguishes a trace segment from the two via orientations.
type ShapeType int

const (
	ShapeTrace ShapeType = iota
	ShapeViaUp
	ShapeViaDown
)

func (s ShapeType) String() string {
	switch s {
	case ShapeTrace:
		return "TRACE"
	case ShapeViaUp:
		return "VIA_UP"
	case ShapeViaDown:
		return "VIA_DOWN"
	default:
		return "UNKNOWN_SHAPE"
	}
}

// CornerCells returns the intermediate cell(s) that a diagonal or knight
// move from 'from' to 'to' passes through and which must also be
// trace-walkable for the move to be legal. A lateral or vertical move has
// no corner cells. A diagonal move has exactly one corner cell (the move is
// treated as approaching along X before Y); a knight move has exactly two,
// matching the reference router's convertCongestionAlongPath corner-cell
// derivation for each of the two knight-jump orientations.
func CornerCells(from, to Coordinate) []Coordinate {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case abs(dx)+abs(dy) == 2 && dx != 0 && dy != 0:
		// Diagonal: (±1, ±1). One corner, chosen as the X-then-Y elbow.
		return []Coordinate{{X: from.X + dx, Y: from.Y, Z: from.Z}}
	case abs(dx) == 1 && abs(dy) == 2:
		half := dy / 2
		return []Coordinate{
			{X: from.X, Y: from.Y + half, Z: from.Z},
			{X: from.X + dx, Y: from.Y + half, Z: from.Z},
		}
	case abs(dx) == 2 && abs(dy) == 1:
		half := dx / 2
		return []Coordinate{
			{X: from.X + half, Y: from.Y, Z: from.Z},
			{X: from.X + half, Y: from.Y + dy, Z: from.Z},
		}
	default:
		return nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
