package control

import (
	"github.com/acorn-router/acorn/congestion"
	"github.com/acorn-router/acorn/metrics"
)

// RecordMeasurement stores fresh metrics for the ladder's current index,
// measured at iteration (spec §4.7: metrics accumulate over the last 20
// iterations regardless of which sensitivity is active, and are recorded
// against whichever index was active at the time).
func (ladder *LadderState) RecordMeasurement(iteration int, m SensitivityMetrics) {
	m.IterationMeasured = iteration
	ladder.Metrics[ladder.CurrentIndex] = m
}

// InvalidateStale implements the 12*ReEquilibrateWindow (240-iteration)
// staleness rule: any index whose last measurement is that many
// iterations or more in the past is cleared, so Assess treats it as
// unmeasured again.
func (ladder *LadderState) InvalidateStale(currentIteration int) {
	const staleAfter = 12 * metrics.ReEquilibrateWindow
	for i := range ladder.Metrics {
		if m := ladder.Metrics[i]; m.Measured() && currentIteration-m.IterationMeasured >= staleAfter {
			ladder.Metrics[i] = SensitivityMetrics{}
		}
	}
}

// Step moves CurrentIndex one rung per d, clamped to the ladder's ends.
func (ladder *LadderState) Step(d Decision) {
	switch d {
	case Increase:
		if ladder.CurrentIndex < congestion.SensitivityLadderLen-1 {
			ladder.CurrentIndex++
		}
	case Decrease:
		if ladder.CurrentIndex > 0 {
			ladder.CurrentIndex--
		}
	}
}

// Assess implements assessCongestionSensitivities' 26-condition truth
// table (spec §4.7, §GLOSSARY Table G2): it compares the ladder's current
// index against whichever of its two neighbors have measured metrics, and
// decides whether to step the index up, down, or hold. The running
// counters (NumChanges, NumReductions, NumStableRoutingMetrics) are
// updated exactly as the condition numbered below directs; comments give
// the original condition number for cross-reference.
func (ladder *LadderState) Assess() Decision {
	const last = congestion.SensitivityLadderLen - 1
	idx := ladder.CurrentIndex
	cur := ladder.Metrics[idx]

	switch {
	case idx == 0:
		higher := ladder.Metrics[1]
		if !higher.Measured() {
			ladder.NumChanges++
			return Increase // #1
		}
		switch CompareRoutingMetrics(cur, higher) {
		case Worse:
			ladder.NumChanges++
			return Increase // #2
		case Better:
			return NoChange // #3
		default:
			ladder.NumChanges++
			ladder.NumStableRoutingMetrics++
			return Increase // #4
		}

	case idx == last:
		lower := ladder.Metrics[last-1]
		if !lower.Measured() {
			ladder.NumChanges++
			ladder.NumReductions++
			return Decrease // #23
		}
		switch CompareRoutingMetrics(cur, lower) {
		case Better, Equivalent:
			ladder.NumStableRoutingMetrics++
			return NoChange // #25, #26
		default:
			ladder.NumChanges++
			ladder.NumReductions++
			return Decrease // #24
		}

	default:
		lower, higher := ladder.Metrics[idx-1], ladder.Metrics[idx+1]
		switch {
		case !lower.Measured() && !higher.Measured():
			ladder.NumChanges++
			return Increase // #5
		case !lower.Measured():
			switch CompareRoutingMetrics(cur, higher) {
			case Worse:
				ladder.NumChanges++
				return Increase // #6
			case Better:
				ladder.NumChanges++
				ladder.NumReductions++
				return Decrease // #7
			default:
				ladder.NumChanges++
				ladder.NumStableRoutingMetrics++
				return Increase // #8
			}
		case !higher.Measured():
			switch CompareRoutingMetrics(cur, lower) {
			case Better:
				ladder.NumChanges++
				return Increase // #10
			case Equivalent:
				ladder.NumChanges++
				ladder.NumStableRoutingMetrics++
				return Increase // #11
			default:
				ladder.NumChanges++
				ladder.NumReductions++
				return Decrease // #9
			}
		default:
			toLower := CompareRoutingMetrics(cur, lower)
			toHigher := CompareRoutingMetrics(cur, higher)
			switch toLower {
			case Worse:
				switch toHigher {
				case Worse:
					if cmp := CompareRoutingMetrics(higher, lower); cmp == Better || cmp == Equivalent {
						ladder.NumChanges++
						return Increase // #13, #14
					}
					ladder.NumChanges++
					ladder.NumReductions++
					return Decrease // #12
				case Better:
					ladder.NumChanges++
					ladder.NumReductions++
					return Decrease // #15
				default:
					ladder.NumChanges++
					ladder.NumStableRoutingMetrics++
					return Increase // #16
				}
			case Better:
				switch toHigher {
				case Worse:
					ladder.NumChanges++
					return Increase // #17
				case Better:
					ladder.NumStableRoutingMetrics++
					return NoChange // #18
				default:
					ladder.NumChanges++
					ladder.NumStableRoutingMetrics++
					return Increase // #19
				}
			default:
				switch toHigher {
				case Worse:
					ladder.NumChanges++
					return Increase // #20
				case Better:
					ladder.NumStableRoutingMetrics++
					return NoChange // #21
				default:
					ladder.NumChanges++
					ladder.NumStableRoutingMetrics++
					return Increase // #22
				}
			}
		}
	}
}
