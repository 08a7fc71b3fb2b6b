package diffpair

import (
	"math"

	"github.com/acorn-router/acorn/geometry"
)

// decideGeometric implements spec §4.6 staircase rung 2. It only applies
// when the connection was DRC-clean last iteration and its start is not in
// a pin-swap zone; otherwise it defers (ok=false) without even computing a
// ratio, per spec: "(only if the connection was DRC-clean last iteration
// and not in a start-side swap zone)".
func decideGeometric(conn Connection) (DecisionResult, bool) {
	if !conn.DRCCleanLastIteration || conn.InStartSwapZone {
		return DecisionResult{}, false
	}

	dSame := dist(conn.StartCoord1, conn.EndCoord1) + dist(conn.StartCoord2, conn.EndCoord2)
	dSwap := dist(conn.StartCoord1, conn.EndCoord2) + dist(conn.StartCoord2, conn.EndCoord1)
	if dSame+dSwap == 0 {
		return DecisionResult{}, false
	}
	ratio := dSame / (dSame + dSwap)

	result, ok := decisionFromRatio(ratio, MethodGeometric)
	return result, ok
}

func dist(a, b geometry.Coordinate) float64 {
	dx, dy, dz := float64(a.X-b.X), float64(a.Y-b.Y), float64(a.Z-b.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
