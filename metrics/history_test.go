package metrics_test

import (
	"testing"

	"github.com/acorn-router/acorn/metrics"
)

// TestDeterminePlateau_FlatCostsTriggersRule1 is end-to-end scenario 5 from
// spec §8: feeding nonPseudoPathCosts = 1000 for iterations 11..20 makes
// inMetricsPlateau[20] true under rule 1 (slope and stddev both exactly
// zero).
func TestDeterminePlateau_FlatCostsTriggersRule1(t *testing.T) {
	h := metrics.NewHistory(1, 1)
	for i := 1; i <= 20; i++ {
		h.Append(metrics.Snapshot{Iteration: i, TotalNonPseudoCost: 1000})
	}
	if !h.DeterminePlateau() {
		t.Fatal("expected plateau to be detected under rule 1")
	}
}

func TestDeterminePlateau_FalseBeforeTenIterations(t *testing.T) {
	h := metrics.NewHistory(1, 1)
	for i := 1; i <= 5; i++ {
		h.Append(metrics.Snapshot{Iteration: i, TotalNonPseudoCost: 1000})
	}
	if h.DeterminePlateau() {
		t.Fatal("plateau should never fire before 10 snapshots exist")
	}
}

func TestDeterminePlateau_NoisyCostsDoNotPlateau(t *testing.T) {
	h := metrics.NewHistory(1, 1)
	costs := []int64{1000, 1400, 900, 1600, 800, 1700, 750, 1800, 700, 2000}
	for i, c := range costs {
		h.Append(metrics.Snapshot{Iteration: i + 1, TotalNonPseudoCost: c})
	}
	if h.DeterminePlateau() {
		t.Fatal("a strongly trending/noisy series should not be flagged as plateaued")
	}
}

func TestFractionRecentIterationsWithoutPathDRCs(t *testing.T) {
	h := metrics.NewHistory(1, 1)
	for i := 1; i <= 10; i++ {
		drcCells := 0
		if i%2 == 0 {
			drcCells = 1
		}
		h.Append(metrics.Snapshot{
			Iteration: i,
			PerPath:   []metrics.PathStats{{DRCCells: drcCells}},
		})
	}
	if got := h.FractionRecentIterationsWithoutPathDRCs(0); got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
}

func TestShiftRegister_AllOnesAfterTwentyDRCIterations(t *testing.T) {
	h := metrics.NewHistory(1, 2)
	for i := 0; i < metrics.ReEquilibrateWindow; i++ {
		h.UpdateDRCShiftRegister(0, 1, true)
	}
	if !h.ShiftRegisterAllOnes(0, 1) {
		t.Fatal("expected all-ones after 20 consecutive DRC iterations")
	}
	if h.ShiftRegisterAllOnes(0, 0) {
		t.Fatal("layer 0 was never updated and should not read as all-ones")
	}
	h.UpdateDRCShiftRegister(0, 1, false)
	if h.ShiftRegisterAllOnes(0, 1) {
		t.Fatal("a single clean iteration should break the all-ones streak")
	}
}
