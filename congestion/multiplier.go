package congestion

import (
	"math"

	"github.com/acorn-router/acorn/geometry"
)

// SensitivityLadderLen is the size of the geometric-mean sensitivity steps
// named in spec §4.4 and §6.
const SensitivityLadderLen = 6

// SensitivityLadder is the six-step geometric-mean percentage ladder trace
// and via sensitivity indices independently walk.
var SensitivityLadder = [SensitivityLadderLen]int64{100, 141, 200, 283, 400, 500}

// DefaultEvapRatePercent and DefaultCellCost are the two "global constants"
// spec §4.4's multiplier formula references without pinning a value. Spec
// §6 only names defaultEvapRate/defaultCellCost by role, not by number; this
// package fixes them at a 10% evaporation rate and one ONE_TRAVERSAL per
// cell.
const (
	DefaultEvapRatePercent int64 = 10
	DefaultCellCost        int64 = geometry.ONE_TRAVERSAL
)

// SensitivityAt returns the percentage at ladder index idx, and false if
// idx is out of range.
func SensitivityAt(idx int) (int64, bool) {
	if idx < 0 || idx >= SensitivityLadderLen {
		return 0, false
	}
	return SensitivityLadder[idx], true
}

// IterationRatio computes spec §4.4's iteration-dependent ratio: flat at
// 0.20 through iteration T, linearly rising to 1.00 by iteration 5T, and
// flat at 1.00 beyond, where T = max(1, round(20*log10(numPaths))).
func IterationRatio(iteration, numPaths int) float64 {
	t := iterationT(numPaths)
	switch {
	case iteration <= t:
		return 0.20
	case iteration <= 5*t:
		frac := float64(iteration-t) / float64(4*t)
		return 0.20 + 0.80*frac
	default:
		return 1.00
	}
}

func iterationT(numPaths int) int {
	if numPaths < 1 {
		numPaths = 1
	}
	t := int(math.Round(20 * math.Log10(float64(numPaths))))
	if t < 1 {
		t = 1
	}
	return t
}

// Multiplier computes the trace- or via-congestion multiplier (spec §4.4):
// ratio * (sensitivityPercent/100) * defaultCellCost * defaultEvapRate /
// (100 - defaultEvapRate) / 100. Trace and via sensitivities are tracked
// independently by the adaptive controller, so the same formula serves
// both; the caller passes whichever ladder value currently applies.
func Multiplier(ratio float64, sensitivityPercent int64) int64 {
	num := ratio * (float64(sensitivityPercent) / 100) * float64(DefaultCellCost) * float64(DefaultEvapRatePercent)
	denom := float64(100-DefaultEvapRatePercent) * 100
	return int64(math.Round(num / denom))
}
