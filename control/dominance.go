package control

// DominanceTarget implements spec §4.7's dominance-based targeting: when
// at least 80% of recent non-pseudo DRC cells are via-to-via, only via
// sensitivity is assessed this iteration (trace is left alone);
// symmetrically for trace-to-trace. Otherwise both are assessed. With no
// recent DRC cells at all, there is nothing to dominate, so both are
// assessed.
func DominanceTarget(counts DRCShapeCounts) Target {
	total := counts.TraceTrace + counts.ViaVia + counts.TraceVia
	if total == 0 {
		return Target{AssessTrace: true, AssessVia: true}
	}
	fractionViaVia := float64(counts.ViaVia) / float64(total)
	fractionTraceTrace := float64(counts.TraceTrace) / float64(total)
	switch {
	case fractionViaVia >= 0.8:
		return Target{AssessVia: true}
	case fractionTraceTrace >= 0.8:
		return Target{AssessTrace: true}
	default:
		return Target{AssessTrace: true, AssessVia: true}
	}
}
