package control

// CompareRoutingMetrics implements compareRoutingMetrics: a, then b, are
// compared in three stages, each falling through to the next only when the
// two are statistically indistinguishable at that stage.
//
//  1. Fraction of DRC-free iterations: a 0.05 absolute difference decides it.
//  2. Mean non-pseudo nets with DRCs: decided once the two means (each
//     padded by the greater of 0.5 or its own standard error) no longer
//     overlap.
//  3. Mean non-pseudo routing cost: decided once the two means (each
//     padded by the greater of 5% of itself or its own standard error) no
//     longer overlap.
//
// Both arguments must be Measured(); callers only invoke this once both
// ladder slots being compared are known.
func CompareRoutingMetrics(a, b SensitivityMetrics) Comparison {
	if a.FractionIterationsWithoutDRCs-b.FractionIterationsWithoutDRCs >= 0.05 {
		return Better
	}
	if a.FractionIterationsWithoutDRCs-b.FractionIterationsWithoutDRCs <= -0.05 {
		return Worse
	}

	average := 0.5 * (a.AvgNonPseudoNetsWithDRCs + b.AvgNonPseudoNetsWithDRCs)
	if average > 0.00001 {
		aLow := a.AvgNonPseudoNetsWithDRCs - maxF(0.5, a.StdErrNonPseudoNetsWithDRCs)
		aHigh := a.AvgNonPseudoNetsWithDRCs + maxF(0.5, a.StdErrNonPseudoNetsWithDRCs)
		bLow := b.AvgNonPseudoNetsWithDRCs - maxF(0.5, b.StdErrNonPseudoNetsWithDRCs)
		bHigh := b.AvgNonPseudoNetsWithDRCs + maxF(0.5, b.StdErrNonPseudoNetsWithDRCs)
		if aHigh < bLow {
			return Better
		}
		if aLow > bHigh {
			return Worse
		}
	}

	uncA := maxF(0.05*a.AvgNonPseudoRoutingCost, a.StdErrNonPseudoRoutingCost)
	uncB := maxF(0.05*b.AvgNonPseudoRoutingCost, b.StdErrNonPseudoRoutingCost)
	if a.AvgNonPseudoRoutingCost+uncA < b.AvgNonPseudoRoutingCost-uncB {
		return Better
	}
	if a.AvgNonPseudoRoutingCost-uncA > b.AvgNonPseudoRoutingCost+uncB {
		return Worse
	}
	return Equivalent
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
