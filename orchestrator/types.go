package orchestrator

import (
	"github.com/acorn-router/acorn/control"
	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/metrics"
)

// Config is the small, typed knob-set SPEC_FULL.md §A.3 carves out of the
// "CLI/configuration loading" Non-goal: an iteration cap, the cumulative
// DRC-free threshold that gates convergence, and the search radius the
// DRC detector uses to bound its cell-neighborhood scan. The sensitivity
// ladder and re-equilibration window are fixed constants (congestion.
// SensitivityLadder, metrics.ReEquilibrateWindow) rather than config knobs,
// since spec §6 lists them as wire-compatible constants, not per-run inputs.
type Config struct {
	MaxIterations      int `yaml:"max_iterations"`
	DRCFreeThreshold   int `yaml:"drc_free_threshold"`
	MaxDRCSearchRadius int `yaml:"max_drc_search_radius_cells"`
}

// DefaultConfig returns the constants spec §6 names by role: an
// iteration cap generous enough for the plateau detector and the
// adaptive controller's 3*ReEquilibrateWindow cooldown to both have room
// to act, and a DRC-free threshold equal to one full re-equilibration
// window.
func DefaultConfig() Config {
	return Config{
		MaxIterations:      1000,
		DRCFreeThreshold:   metrics.ReEquilibrateWindow,
		MaxDRCSearchRadius: 8,
	}
}

func (c Config) controlConfig() control.Config {
	return control.Config{DRCFreeThreshold: c.DRCFreeThreshold, MaxIterations: c.MaxIterations}
}

// PathSpec is one real (non-pseudo), user-defined net's static input: the
// external InputValues spec §6 describes, narrowed to what astar.Search
// and the feedback loop need per path. RunSpec.Paths holds exactly the
// paths numbered [0, numPaths) — the pseudo-path numbering range
// [numPaths, numPaths+numPseudoPaths) spec §3 defines is never present
// here; PseudoPathSpec owns that midline's own Start/End/Mask instead,
// since the midline deposits no congestion and needs no terminal-swap or
// DRC bookkeeping of its own.
type PathSpec struct {
	PathNum int
	Subset  int
	Shape   geometry.ShapeType
	Mask    geometry.DirMask
	Start   geometry.Coordinate
	End     geometry.Coordinate

	// InStartSwapZone excuses this path from the adaptive controller's
	// terminal-swap flagging (spec §4.7). The congestion deposit does not
	// read it.
	InStartSwapZone bool

	// IsDiffPair marks this path as one of a differential pair's two
	// shoulder children; DiffPairPartner and PseudoParent are only
	// meaningful when it is true.
	IsDiffPair      bool
	DiffPairPartner int // the other child's PathNum
	PseudoParent    int // the owning pseudo-path's PathNum: numPaths + its index in RunSpec.PseudoPaths
}

// PseudoPathSpec links a pseudo-path's midline to the two real paths
// (PathSpec entries, IsDiffPair true) it offsets, and carries the
// per-pseudo-path geometry the diff-pair optimizer and the pseudo-via
// repulsion rule need: the gap-routing radius sub-map A* search restricts
// to, the differential pair's line width, and whether the pair's P/N roles
// may be exchanged wholesale to fix odd-swap parity (spec §4.6). Run does
// not read LineWidthCells. Callers must number PseudoPaths[i].PathNum as
// numPaths+i, matching spec §3's path-number scheme exactly; Run validates
// this.
type PseudoPathSpec struct {
	PathNum                      int
	Child1PathNum, Child2PathNum int
	Subset                       int
	Mask                         geometry.DirMask
	Start, End                   geometry.Coordinate
	GapRoutingRadiusCells        int
	LineWidthCells               int
	PNSwappable                  bool
}

// RunSpec bundles everything Run needs beyond the grid itself and Config:
// the per-path and per-pseudo-path static inputs, the shared base-cost
// table, and the design-rule collaborators DRC detection and congestion
// deposit consult (spec §1: these remain external collaborators; Run only
// ever reads from them).
type RunSpec struct {
	Paths       []PathSpec
	PseudoPaths []PseudoPathSpec

	BaseCosts          geometry.BaseCosts
	NumLayers          int
	UniversalRepellent int

	DRCRules metrics.DRCRules

	// HasUserCostMultipliers gates BestIteration's "iteration 1 is always
	// skipped" rule (spec §4.5).
	HasUserCostMultipliers bool
}

func (spec RunSpec) numPaths() int {
	return len(spec.Paths)
}

func (spec RunSpec) totalPaths() int {
	return spec.numPaths() + len(spec.PseudoPaths)
}

// subsetMap is the caller-agnostic SubsetResolver (congestion.
// SubsetResolver and metrics.SubsetResolver are structurally identical,
// one-method interfaces; a single map value satisfies both without this
// package importing either as a concrete dependency of its own type).
type subsetMap map[int]int

func (m subsetMap) SubsetFor(pathNum int) int { return m[pathNum] }

func (spec RunSpec) subsets() subsetMap {
	m := make(subsetMap, len(spec.Paths)+len(spec.PseudoPaths))
	for _, p := range spec.Paths {
		m[p.PathNum] = p.Subset
	}
	for _, pp := range spec.PseudoPaths {
		m[pp.PathNum] = pp.Subset
	}
	return m
}

// PathResult is one path's final segment lists for a completed run, spec
// §6's "for each path: its non-contiguous and contiguous segment lists."
type PathResult struct {
	PathNum       int
	NonContiguous []geometry.Coordinate
	Contiguous    []geometry.Coordinate
	GCost         int64
}

// IterationLog is one iteration's narratable summary: the metrics
// snapshot, whatever the adaptive controller decided, and the plateau
// flag, kept so a caller can inspect the full run history instead of only
// the final result.
type IterationLog struct {
	Iteration int
	Snapshot  metrics.Snapshot
	Decisions control.Decisions
	InPlateau bool
}

// RunResult is Run's final report: the best iteration number (spec §4.5's
// best-iteration selection), the per-iteration log, the final routed
// paths keyed by path number, and the full metrics history for a caller
// that wants to recompute statistics Run itself never needed.
type RunResult struct {
	BestIteration  int
	Iterations     []IterationLog
	FinalPaths     map[int]PathResult
	History        *metrics.History
	StoppedAtCap   bool
	ControllerState *control.State
}
