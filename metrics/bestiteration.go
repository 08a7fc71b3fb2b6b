package metrics

// BestIteration implements spec §4.5's best-iteration selection: if no
// DRC-free iteration exists, the best is the one with fewest non-pseudo DRC
// cells (ties broken by lowest iteration number); otherwise the best is the
// DRC-free iteration with the lowest NonPseudoPathCosts total. When
// hasUserCostMultipliers is true, iteration 1 (the intentional rat's-nest
// pass) is never eligible.
//
// Returns (0, false) if h has no snapshots at all.
func BestIteration(h *History, hasUserCostMultipliers bool) (int, bool) {
	eligible := func(s Snapshot) bool {
		return !hasUserCostMultipliers || s.Iteration != 1
	}

	bestDRCFree, haveDRCFree := Snapshot{}, false
	bestAny, haveAny := Snapshot{}, false

	for _, s := range h.Snapshots {
		if !eligible(s) {
			continue
		}
		if !haveAny || s.NonPseudoNumDRCCells < bestAny.NonPseudoNumDRCCells ||
			(s.NonPseudoNumDRCCells == bestAny.NonPseudoNumDRCCells && s.Iteration < bestAny.Iteration) {
			bestAny, haveAny = s, true
		}
		if s.NonPseudoNumDRCCells == 0 {
			if !haveDRCFree || s.TotalNonPseudoCost < bestDRCFree.TotalNonPseudoCost ||
				(s.TotalNonPseudoCost == bestDRCFree.TotalNonPseudoCost && s.Iteration < bestDRCFree.Iteration) {
				bestDRCFree, haveDRCFree = s, true
			}
		}
	}

	if haveDRCFree {
		return bestDRCFree.Iteration, true
	}
	if haveAny {
		return bestAny.Iteration, true
	}
	return 0, false
}
