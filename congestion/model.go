package congestion

import (
	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

// SubsetResolver maps a path number to the design-rule subset it routes
// under, so deposits and penalties can be scoped per spec §3's
// (path, subset, shape) congestion key. The adaptive controller owns the
// authoritative path/subset assignment; Model only consults it.
type SubsetResolver interface {
	SubsetFor(pathNum int) int
}

// staticSubset is a SubsetResolver that reports the same subset for every
// path, useful for single-subset boards and tests.
type staticSubset int

func (s staticSubset) SubsetFor(int) int { return int(s) }

// StaticSubset returns a SubsetResolver reporting subset for every path.
func StaticSubset(subset int) SubsetResolver { return staticSubset(subset) }

// Model adapts a *gridstore.Grid, plus the pair of trace/via multipliers
// the adaptive controller currently has in effect, into an
// astar.CongestionModel. One Model is built fresh each iteration since the
// multipliers it carries change iteration to iteration (spec §4.4).
type Model struct {
	grid      *gridstore.Grid
	traceMult int64 // scaled by 100
	viaMult   int64 // scaled by 100
	subsets   SubsetResolver
}

// NewModel builds a Model. traceMult and viaMult are the outputs of
// Multiplier for the trace and via sensitivity currently assigned to each
// path's subset; subsets resolves a path number to its design-rule subset.
func NewModel(grid *gridstore.Grid, traceMult, viaMult int64, subsets SubsetResolver) *Model {
	if subsets == nil {
		subsets = StaticSubset(0)
	}
	return &Model{grid: grid, traceMult: traceMult, viaMult: viaMult, subsets: subsets}
}

// TracePenalty implements astar.CongestionModel. It sums every TRACE-shaped
// congestion entry at neighbor (via entries are skipped), scaled by the
// trace multiplier, including entries
// deposited by pathNum itself: deposits reflect the previous iteration's
// routing, not the path currently under search, so there is nothing to
// exclude (spec §4.4 deposits/evaporates once per full iteration, after
// every path has already been routed for that iteration).
func (m *Model) TracePenalty(neighbor geometry.Coordinate, pathNum int) int64 {
	var total int64
	for _, e := range m.grid.CongestionAt(neighbor) {
		if e.Shape != geometry.ShapeTrace {
			continue
		}
		total += e.TraversalsX100
	}
	return total * m.traceMult / 100
}

// ViaPenalty implements astar.CongestionModel by delegating to
// geometry.CalcViaCongestion, which handles the VIA_UP/VIA_DOWN
// de-duplication-per-path rule spec §4.1 and §4.4 both describe.
func (m *Model) ViaPenalty(parent, neighbor geometry.Coordinate, pathNum int) int64 {
	return geometry.CalcViaCongestion(m.grid, parent, neighbor.Z, m.viaMult)
}

// SubsetFor exposes the resolver Model was built with, so callers that
// deposit congestion (feedback.go) can share the same path->subset mapping
// Model uses to compute penalties.
func (m *Model) SubsetFor(pathNum int) int {
	return m.subsets.SubsetFor(pathNum)
}
