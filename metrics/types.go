package metrics

// DRCLedger is the crossing_matrix of spec §4.5: a symmetric count, per pair
// of path numbers, of DRC cells where the two nets illegally share space.
// The diagonal entry for a path counts cells where that path conflicts with
// itself (a net whose own centerline re-approaches closer than its own
// design-rule spacing). This mirrors the original router's separate
// record_DRC_by_paths/check_for_DRC entry points (spec's SPEC_FULL §C.2)
// instead of inlining matrix indexing at every call site.
type DRCLedger struct {
	numPaths int
	counts   map[[2]int]int
}

// NewDRCLedger returns an empty ledger sized for numPaths user-defined and
// pseudo paths.
func NewDRCLedger(numPaths int) *DRCLedger {
	return &DRCLedger{numPaths: numPaths, counts: make(map[[2]int]int)}
}

func key(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

// Record increments the crossing count between paths i and j by one. Pass
// i == j to record a self-DRC.
func (l *DRCLedger) Record(i, j int) {
	l.counts[key(i, j)]++
}

// Count returns the crossing count between paths i and j recorded so far.
func (l *DRCLedger) Count(i, j int) int {
	return l.counts[key(i, j)]
}

// TotalForPath sums every crossing count involving path p, including its
// self-DRC diagonal entry.
func (l *DRCLedger) TotalForPath(p int) int {
	total := 0
	for k, v := range l.counts {
		if k[0] == p || k[1] == p {
			total += v
		}
	}
	return total
}

// PathStats is one path's per-iteration cost and DRC breakdown (spec §4.5:
// path_cost, lateral length, adjacent/diagonal/knight step counts, via
// count, path_DRC_cells and path_DRC_cells_by_layer).
type PathStats struct {
	PathCost        int64
	LateralLength   int
	AdjacentSteps   int
	DiagonalSteps   int
	KnightSteps     int
	ViaCount        int
	DRCCells        int
	DRCCellsByLayer []int
}

// Snapshot is one completed iteration's full RoutabilityMetrics (spec §4.5
// and §6's "per-iteration RoutingMetrics snapshot").
type Snapshot struct {
	Iteration int
	PerPath   []PathStats
	Crossing  *DRCLedger

	NonPseudoPathLengths   []int
	NonPseudoNumDRCCells   int
	NonPseudoDRCTraceTrace int
	NonPseudoDRCViaVia     int
	NonPseudoDRCTraceVia   int
	NonPseudoViaCounts     []int
	NonPseudoPathCosts     []int64
	TotalNonPseudoCost     int64
	NumNonPseudoDRCNets    int

	InPlateau bool
}
