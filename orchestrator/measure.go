package orchestrator

import (
	"math"

	"github.com/acorn-router/acorn/congestion"
	"github.com/acorn-router/acorn/control"
	"github.com/acorn-router/acorn/metrics"
)

// tail returns the last window snapshots, or all of them if fewer exist.
func tail(snaps []metrics.Snapshot, window int) []metrics.Snapshot {
	if len(snaps) <= window {
		return snaps
	}
	return snaps[len(snaps)-window:]
}

// meanStdErr returns the sample mean and standard error of the mean.
func meanStdErr(xs []float64) (mean, stderr float64) {
	n := float64(len(xs))
	if n == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= n
	if n < 2 {
		return mean, 0
	}
	var variance float64
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= n - 1
	return mean, math.Sqrt(variance / n)
}

// computeSensitivityMetrics builds the control.SensitivityMetrics spec
// §4.7 measures over the controller's window: fraction of DRC-free
// iterations, mean non-pseudo nets with DRCs, and mean non-pseudo routing
// cost, both with standard error. Trace and via sensitivity share one
// measurement here — the underlying routing quality they are both judged
// against is the same map-wide history, not two independently observable
// quantities (see DESIGN.md).
func computeSensitivityMetrics(history *metrics.History, window int) control.SensitivityMetrics {
	snaps := tail(history.Snapshots, window)
	if len(snaps) == 0 {
		return control.SensitivityMetrics{}
	}
	drcFree := 0
	nets := make([]float64, len(snaps))
	costs := make([]float64, len(snaps))
	for i, s := range snaps {
		if s.NonPseudoNumDRCCells == 0 {
			drcFree++
		}
		nets[i] = float64(s.NumNonPseudoDRCNets)
		costs[i] = float64(s.TotalNonPseudoCost)
	}
	meanNets, stderrNets := meanStdErr(nets)
	meanCost, stderrCost := meanStdErr(costs)
	return control.SensitivityMetrics{
		FractionIterationsWithoutDRCs: float64(drcFree) / float64(len(snaps)),
		AvgNonPseudoNetsWithDRCs:      meanNets,
		StdErrNonPseudoNetsWithDRCs:   stderrNets,
		AvgNonPseudoRoutingCost:       meanCost,
		StdErrNonPseudoRoutingCost:    stderrCost,
	}
}

// fractionIterationsWithoutMapDRCs is the map-wide analogue of
// metrics.History.FractionRecentIterationsWithoutPathDRCs: the fraction
// of the last window iterations with zero non-pseudo DRC cells anywhere
// on the map, the quantity spec §4.7's pseudo-via-repulsion and
// terminal-swap gates both read.
func fractionIterationsWithoutMapDRCs(history *metrics.History, window int) float64 {
	snaps := tail(history.Snapshots, window)
	if len(snaps) == 0 {
		return 1
	}
	clean := 0
	for _, s := range snaps {
		if s.NonPseudoNumDRCCells == 0 {
			clean++
		}
	}
	return float64(clean) / float64(len(snaps))
}

// sumRecentDRCShapes totals the trace-trace/via-via/trace-via DRC cell
// breakdown over the last window iterations, the input
// control.DominanceTarget uses for spec §4.7's 80%-dominance rule.
func sumRecentDRCShapes(history *metrics.History, window int) control.DRCShapeCounts {
	var out control.DRCShapeCounts
	for _, s := range tail(history.Snapshots, window) {
		out.TraceTrace += s.NonPseudoDRCTraceTrace
		out.ViaVia += s.NonPseudoDRCViaVia
		out.TraceVia += s.NonPseudoDRCTraceVia
	}
	return out
}

// sensitivityPercent reads congestion.SensitivityLadder[idx], falling back
// to the lowest rung for an out-of-range index (defensive only; control
// clamps CurrentIndex to the ladder's bounds itself).
func sensitivityPercent(idx int) int64 {
	if v, ok := congestion.SensitivityAt(idx); ok {
		return v
	}
	return congestion.SensitivityLadder[0]
}
