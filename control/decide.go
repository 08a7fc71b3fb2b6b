package control

import "github.com/acorn-router/acorn/metrics"

// Decide implements determineAlgorithmChanges: gated by the plateau,
// cooldown, DRC-free-threshold-achieved, and iterations-remaining
// conditions, it assesses at most one of {enable pseudo-via repulsion,
// change sensitivity, swap terminals}, evaluated in that
// reverse-probability order. When a sensitivity kind is excused by
// dominance-based targeting, its ladder is credited a stable-metrics
// reading instead of being assessed, matching the reference's behavior of
// never leaving an un-assessed sensitivity looking stale to the pseudo-via
// repulsion rule.
func Decide(cfg Config, in Inputs, state *State) Decisions {
	var out Decisions

	if !in.InMetricsPlateau ||
		in.CurrentIteration < state.LatestAlgorithmChange+3*metrics.ReEquilibrateWindow ||
		in.CumulativeDRCFreeIterations >= cfg.DRCFreeThreshold ||
		cfg.MaxIterations-in.CurrentIteration <= metrics.ReEquilibrateWindow {
		return out
	}

	if in.NumLayers > 1 && in.EligiblePseudoViaCount > 0 &&
		in.FractionRecentIterationsWithoutMapDRCs <= 0.1 &&
		state.Via.NumReductions+state.Via.NumStableRoutingMetrics >= 1 &&
		state.Trace.NumReductions+state.Trace.NumStableRoutingMetrics >= 1 {
		out.EnablePseudoTraceCongestion = true
		out.Changed = true
		state.LatestAlgorithmChange = in.CurrentIteration
		return out
	}

	if in.FractionRecentIterationsWithoutMapDRCs <= 0.2 &&
		(state.NumStartEndTerminalSwaps >= 3 || in.EligibleTerminalSwapCount == 0) {
		target := DominanceTarget(in.DRCShapes)

		if target.AssessVia {
			out.ChangeViaSensitivity = state.Via.Assess()
			if out.ChangeViaSensitivity != NoChange {
				out.Changed = true
				state.Via.Step(out.ChangeViaSensitivity)
			}
		} else {
			state.Via.NumStableRoutingMetrics++
		}

		if target.AssessTrace {
			out.ChangeTraceSensitivity = state.Trace.Assess()
			if out.ChangeTraceSensitivity != NoChange {
				out.Changed = true
				state.Trace.Step(out.ChangeTraceSensitivity)
			}
		} else {
			state.Trace.NumStableRoutingMetrics++
		}

		if out.Changed {
			state.LatestAlgorithmChange = in.CurrentIteration
			return out
		}
	}

	if in.EligibleTerminalSwapCount > 0 && in.FractionRecentIterationsWithoutMapDRCs <= 0.6 {
		out.SwapStartAndEndTerms = true
		out.Changed = true
		state.NumStartEndTerminalSwaps++
		state.LatestAlgorithmChange = in.CurrentIteration
	}
	return out
}
