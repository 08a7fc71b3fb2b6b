package control

import "github.com/acorn-router/acorn/congestion"

// SensitivityKind distinguishes the two independently-stepped congestion
// sensitivities the adaptive controller walks along the six-step ladder
// (congestion.SensitivityLadder).
type SensitivityKind int

const (
	Trace SensitivityKind = iota
	Via
)

func (k SensitivityKind) String() string {
	if k == Via {
		return "via"
	}
	return "trace"
}

// Decision is the outcome of assessing one sensitivity's neighboring
// ladder metrics.
type Decision int

const (
	NoChange Decision = iota
	Increase
	Decrease
)

func (d Decision) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "no_change"
	}
}

// Comparison is the tri-state result of comparing two sensitivity indices'
// routing metrics (spec §4.7: "BETTER, WORSE, or EQUIVALENT").
type Comparison int

const (
	Equivalent Comparison = iota
	Better
	Worse
)

// SensitivityMetrics is one ladder index's routing metrics, measured over
// the last congestion-sensitivity-assessment window the index was active
// for: fraction of DRC-free iterations, mean non-pseudo nets with DRCs
// (with standard error), and mean non-pseudo routing cost (with standard
// error).
type SensitivityMetrics struct {
	IterationMeasured int

	FractionIterationsWithoutDRCs float64
	AvgNonPseudoNetsWithDRCs      float64
	StdErrNonPseudoNetsWithDRCs   float64
	AvgNonPseudoRoutingCost       float64
	StdErrNonPseudoRoutingCost    float64
}

// Measured reports whether m has ever been populated.
func (m SensitivityMetrics) Measured() bool { return m.IterationMeasured > 0 }

// LadderState is the six-slot metrics table and running counters
// Assess and the dominance/pseudo-via-repulsion rules consult for one
// sensitivity kind (trace or via).
type LadderState struct {
	Metrics      [congestion.SensitivityLadderLen]SensitivityMetrics
	CurrentIndex int

	NumChanges              int
	NumStableRoutingMetrics int
	NumReductions           int
}

// State is the adaptive controller's persistent bookkeeping across
// iterations.
type State struct {
	Trace LadderState
	Via   LadderState

	NumStartEndTerminalSwaps int
	LatestAlgorithmChange    int
}

// NewState returns a controller State with both ladders at index 0 (the
// lowest, 100%, sensitivity).
func NewState() *State {
	return &State{}
}

// PathInfo is the per-path static information the terminal-swap test
// needs, supplied by the orchestrator from its external InputValues
// (spec §6).
type PathInfo struct {
	InSwapZone      bool
	IsPseudoNet     bool
	IsDiffPair      bool
	DiffPairPartner int // meaningful only if IsDiffPair
	PseudoParent    int // meaningful only if IsDiffPair: diffPairToPseudoNetMap[path]
}

// DRCShapeCounts is the trace-to-trace / via-to-via / trace-to-via DRC
// cell counts accumulated over the controller's measurement window (spec
// §4.7's dominance-based targeting), summed by the orchestrator from its
// metrics history.
type DRCShapeCounts struct {
	TraceTrace int
	ViaVia     int
	TraceVia   int
}

// Target is which sensitivity kind(s) Assess should run against this
// iteration.
type Target struct {
	AssessTrace bool
	AssessVia   bool
}

// Config holds the two run-level knobs Decide gates on besides the fixed
// metrics.ReEquilibrateWindow-derived constants.
type Config struct {
	DRCFreeThreshold int
	MaxIterations    int
}

// Inputs bundles everything Decide needs to evaluate one iteration's
// algorithm-change policy.
type Inputs struct {
	CurrentIteration                       int
	InMetricsPlateau                       bool
	CumulativeDRCFreeIterations            int
	FractionRecentIterationsWithoutMapDRCs float64
	NumLayers                              int

	EligibleTerminalSwapCount int
	EligiblePseudoViaCount    int

	DRCShapes DRCShapeCounts
}

// Decisions is the at-most-one-change outcome of one call to Decide.
type Decisions struct {
	EnablePseudoTraceCongestion bool
	ChangeViaSensitivity        Decision
	ChangeTraceSensitivity      Decision
	SwapStartAndEndTerms        bool
	Changed                     bool
}
