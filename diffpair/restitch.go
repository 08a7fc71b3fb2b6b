package diffpair

import (
	"math"

	"github.com/acorn-router/acorn/geometry"
)

// Restitch implements spec §4.6's pseudo-path re-stitching: walk each
// connection and either copy its span straight through (NotSwapped) or
// cross-copy it (Swapped) into the two output children.
//
// If the pseudo-path is P/N-swappable and the total swap count is odd,
// the start terminals themselves are exchanged instead of forcing a
// parity fix onto some connection; swappedStartTerminals reports this so
// the caller can relabel the congestion at the new shared start cell via
// Grid.SwapCongestionPaths. If the pseudo-path is not P/N-swappable and
// the count is odd, the connection whose symmetry ratio sits closest to
// 0.5 (minimum impact) is toggled instead, to force an even count.
//
// After re-stitching, duplicate consecutive points are removed from each
// output child.
func Restitch(conns []Connection, decisions []DecisionResult, child1, child2 []geometry.Coordinate, pnSwappable bool) (newChild1, newChild2 []geometry.Coordinate, swappedStartTerminals bool, err error) {
	if len(conns) == 0 || len(conns) != len(decisions) {
		return nil, nil, false, ErrMisalignedChildren
	}

	votes := make([]SwapDecision, len(decisions))
	swapCount := 0
	for i, d := range decisions {
		votes[i] = d.Decision
		if d.Decision == Swapped {
			swapCount++
		}
	}

	if swapCount%2 == 1 {
		if pnSwappable {
			swappedStartTerminals = true
		} else {
			idx := closestToHalf(decisions)
			votes[idx] = flip(votes[idx])
		}
	}

	for i, conn := range conns {
		seg1 := child1[conn.StartSegIdx1 : conn.EndSegIdx1+1]
		seg2 := child2[conn.StartSegIdx2 : conn.EndSegIdx2+1]
		if votes[i] == Swapped {
			seg1, seg2 = child2[conn.StartSegIdx2:conn.EndSegIdx2+1], child1[conn.StartSegIdx1:conn.EndSegIdx1+1]
		}
		if i == 0 {
			newChild1 = append(newChild1, seg1...)
			newChild2 = append(newChild2, seg2...)
			continue
		}
		newChild1 = append(newChild1, seg1[1:]...)
		newChild2 = append(newChild2, seg2[1:]...)
	}

	if swappedStartTerminals && len(newChild1) > 0 && len(newChild2) > 0 {
		newChild1[0], newChild2[0] = newChild2[0], newChild1[0]
	}

	newChild1 = dedupeConsecutive(newChild1)
	newChild2 = dedupeConsecutive(newChild2)
	return newChild1, newChild2, swappedStartTerminals, nil
}

func flip(d SwapDecision) SwapDecision {
	if d == Swapped {
		return NotSwapped
	}
	return Swapped
}

// closestToHalf returns the index of the decision whose symmetry ratio is
// nearest 0.5, the "minimum impact" connection spec §4.6 toggles to force
// an even swap count on a non-P/N-swappable pseudo-path.
func closestToHalf(decisions []DecisionResult) int {
	best := 0
	bestDist := math.Abs(decisions[0].SymmetryRatio - 0.5)
	for i := 1; i < len(decisions); i++ {
		dist := math.Abs(decisions[i].SymmetryRatio - 0.5)
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

func dedupeConsecutive(coords []geometry.Coordinate) []geometry.Coordinate {
	if len(coords) == 0 {
		return coords
	}
	out := coords[:1]
	for _, c := range coords[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}
