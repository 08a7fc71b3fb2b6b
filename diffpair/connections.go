package diffpair

import "github.com/acorn-router/acorn/geometry"

// DetectConnections partitions a pseudo-path's contiguous centerline into
// the sequence of connections spec §4.6 describes: start-terminal -> first
// pseudo-via, each pseudo-via -> next pseudo-via, final pseudo-via ->
// end-terminal. child1 and child2 are the two shoulder children's own
// contiguous coordinate sequences; since both children are routed as fixed
// offsets of the same centerline they share its length and via indices,
// which is what lets this read endpoints off by index rather than
// re-deriving geometry.
//
// isVia reports whether the centerline cell at a given index is a
// pseudo-via site (a Z-changing step); DRCClean and inSwapZone report,
// per connection, whether it was DRC-clean last iteration and whether its
// start lies in a pin-swap zone, both needed by the decision staircase.
func DetectConnections(centerline, child1, child2 []geometry.Coordinate, isVia func(idx int) bool, drcClean func(startIdx, endIdx int) bool, inSwapZone func(geometry.Coordinate) bool) ([]Connection, error) {
	if len(centerline) < 2 || len(child1) != len(centerline) || len(child2) != len(centerline) {
		return nil, ErrMisalignedChildren
	}

	bounds := []int{0}
	for i := 1; i < len(centerline)-1; i++ {
		if isVia(i) {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, len(centerline)-1)

	conns := make([]Connection, 0, len(bounds)-1)
	for k := 0; k+1 < len(bounds); k++ {
		si, ei := bounds[k], bounds[k+1]
		conn := Connection{
			StartCoord1:  child1[si],
			StartCoord2:  child2[si],
			EndCoord1:    child1[ei],
			EndCoord2:    child2[ei],
			StartSegIdx1: si, StartSegIdx2: si,
			EndSegIdx1: ei, EndSegIdx2: ei,
			StartShape1: shapeAt(child1, si),
			StartShape2: shapeAt(child2, si),
			EndShape1:   shapeAt(child1, ei),
			EndShape2:   shapeAt(child2, ei),
		}
		conn.StartSameLayer = conn.StartCoord1.Z == conn.StartCoord2.Z
		conn.EndSameLayer = conn.EndCoord1.Z == conn.EndCoord2.Z
		if drcClean != nil {
			conn.DRCCleanLastIteration = drcClean(si, ei)
		}
		if inSwapZone != nil {
			conn.InStartSwapZone = inSwapZone(conn.StartCoord1) || inSwapZone(conn.StartCoord2)
		}
		conns = append(conns, conn)
	}
	return conns, nil
}

// shapeAt infers the shape type of cells[idx] from whether the move into
// or out of it changes layer: a Z-changing step carries a via shape, any
// other position is a trace terminal or via-to-via straight run.
func shapeAt(cells []geometry.Coordinate, idx int) geometry.ShapeType {
	if idx > 0 && cells[idx-1].Z != cells[idx].Z {
		if cells[idx].Z > cells[idx-1].Z {
			return geometry.ShapeViaUp
		}
		return geometry.ShapeViaDown
	}
	if idx < len(cells)-1 && cells[idx+1].Z != cells[idx].Z {
		if cells[idx+1].Z > cells[idx].Z {
			return geometry.ShapeViaUp
		}
		return geometry.ShapeViaDown
	}
	return geometry.ShapeTrace
}
