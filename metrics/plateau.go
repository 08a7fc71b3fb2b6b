package metrics

import "math"

// DeterminePlateau implements determineIfMetricsPlateaued from spec §4.5.
// It looks at h.Snapshots[len-10:] (the "last 10 iterations") and, if
// available, the 10 iterations before that (the "10 earlier" window), each
// measured against TotalNonPseudoCost. It returns false until at least 10
// snapshots have been recorded.
func (h *History) DeterminePlateau() bool {
	n := len(h.Snapshots)
	if n < 10 {
		return false
	}
	last10 := costsOf(h.Snapshots[n-10:])
	slopeLast, stddevLast := linearSlope(last10), stddev(last10)

	if slopeLast == 0 && stddevLast == 0 {
		return true
	}

	if n < 20 {
		return false
	}
	earlier10 := costsOf(h.Snapshots[n-20 : n-10])
	slopeEarlier := linearSlope(earlier10)
	stddevEarlier := stddev(earlier10)

	slopePctLast := slopePercent(slopeLast, last10)
	slopePctEarlier := slopePercent(slopeEarlier, earlier10)

	return stddevLast <= 2*stddevEarlier &&
		math.Abs(slopePctLast) <= 0.1 &&
		math.Abs(slopePctEarlier) <= 0.2
}

func costsOf(snaps []Snapshot) []float64 {
	out := make([]float64, len(snaps))
	for i, s := range snaps {
		out[i] = float64(s.TotalNonPseudoCost)
	}
	return out
}

// linearSlope fits a simple least-squares line to ys against index 0..n-1
// and returns its slope.
func linearSlope(ys []float64) float64 {
	n := float64(len(ys))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func stddev(ys []float64) float64 {
	n := float64(len(ys))
	if n == 0 {
		return 0
	}
	var mean float64
	for _, y := range ys {
		mean += y
	}
	mean /= n
	var variance float64
	for _, y := range ys {
		d := y - mean
		variance += d * d
	}
	variance /= n
	return math.Sqrt(variance)
}

// slopePercent expresses a per-iteration slope as a percentage of the
// window's mean value, the unit spec §4.5's "%/iteration" thresholds use.
func slopePercent(slope float64, ys []float64) float64 {
	var mean float64
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))
	if mean == 0 {
		return 0
	}
	return 100 * slope / mean
}
