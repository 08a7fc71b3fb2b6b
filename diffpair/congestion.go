package diffpair

import "github.com/acorn-router/acorn/geometry"

// DominanceResolver reports which of two diff-pair children has deposited
// the larger congestion footprint within radiusCells of center, per spec
// §4.6 rung 3's "look up the dominant diff-pair identity in a disc of
// radius equal to half the diff-pair pitch." Returns ok=false if neither
// child has any congestion there (no dominance can be read).
type DominanceResolver interface {
	DominantChild(center geometry.Coordinate, radiusCells int, child1PathNum, child2PathNum int) (child int, ok bool)
}

// decideCongestionMemory implements spec §4.6 staircase rung 3: near each
// of the connection's four terminals, find which child's congestion
// dominates within radiusCells. If all four agree on a consistent
// (un)swapped configuration, commit with a ratio of 0 or 1 (unambiguous by
// construction); any disagreement defers to the sub-map rung.
func decideCongestionMemory(conn Connection, resolver DominanceResolver, radiusCells, child1PathNum, child2PathNum int) (DecisionResult, bool) {
	domStart1, ok1 := resolver.DominantChild(conn.StartCoord1, radiusCells, child1PathNum, child2PathNum)
	domStart2, ok2 := resolver.DominantChild(conn.StartCoord2, radiusCells, child1PathNum, child2PathNum)
	domEnd1, ok3 := resolver.DominantChild(conn.EndCoord1, radiusCells, child1PathNum, child2PathNum)
	domEnd2, ok4 := resolver.DominantChild(conn.EndCoord2, radiusCells, child1PathNum, child2PathNum)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return DecisionResult{}, false
	}

	notSwappedPattern := domStart1 == child1PathNum && domStart2 == child2PathNum &&
		domEnd1 == child1PathNum && domEnd2 == child2PathNum
	swappedPattern := domStart1 == child2PathNum && domStart2 == child1PathNum &&
		domEnd1 == child2PathNum && domEnd2 == child1PathNum

	switch {
	case notSwappedPattern && !swappedPattern:
		return DecisionResult{Decision: NotSwapped, SymmetryRatio: 0, Method: MethodCongestionMemory}, true
	case swappedPattern && !notSwappedPattern:
		return DecisionResult{Decision: Swapped, SymmetryRatio: 1, Method: MethodCongestionMemory}, true
	default:
		return DecisionResult{}, false
	}
}
