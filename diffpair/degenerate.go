package diffpair

// decideDegenerate implements spec §4.6 staircase rung 1: if any start
// coordinate equals any end coordinate, the swap decision is forced so the
// coincident endpoints belong to the same child. Returns ok=false when no
// coordinate actually coincides, so the caller falls through to the next
// rung.
func decideDegenerate(conn Connection) (DecisionResult, bool, error) {
	s1e1 := conn.StartCoord1 == conn.EndCoord1
	s1e2 := conn.StartCoord1 == conn.EndCoord2
	s2e1 := conn.StartCoord2 == conn.EndCoord1
	s2e2 := conn.StartCoord2 == conn.EndCoord2

	switch {
	case s1e1 && s2e2 && !s1e2 && !s2e1:
		// Child 1 end matches child 1 start: straight through.
		return DecisionResult{Decision: NotSwapped, SymmetryRatio: 0, Method: MethodDegenerate}, true, nil
	case s1e2 && s2e1 && !s1e1 && !s2e2:
		// Child 1's start matches child 2's end: they cross.
		return DecisionResult{Decision: Swapped, SymmetryRatio: 1, Method: MethodDegenerate}, true, nil
	case (s1e1 && s1e2) || (s2e1 && s2e2):
		// The same child's start equals both ends with identical
		// coordinates: the connection is degenerate on its own terms.
		return DecisionResult{}, false, ErrConnectionDegenerate
	case s1e1 || s2e2 || s1e2 || s2e1:
		// Exactly one coincidence: still forces an orientation, just
		// without the symmetric confirmation of the first two cases.
		if s1e1 || s2e2 {
			return DecisionResult{Decision: NotSwapped, SymmetryRatio: 0, Method: MethodDegenerate}, true, nil
		}
		return DecisionResult{Decision: Swapped, SymmetryRatio: 1, Method: MethodDegenerate}, true, nil
	default:
		return DecisionResult{}, false, nil
	}
}
