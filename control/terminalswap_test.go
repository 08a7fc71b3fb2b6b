package control_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acorn-router/acorn/control"
	"github.com/acorn-router/acorn/metrics"
)

func withDRCHistory(numPaths int, pathHadDRC func(path int) bool, iterations int) *metrics.History {
	h := metrics.NewHistory(numPaths, 1)
	for it := 0; it < iterations; it++ {
		perPath := make([]metrics.PathStats, numPaths)
		for p := 0; p < numPaths; p++ {
			if pathHadDRC(p) {
				perPath[p].DRCCells = 1
			}
		}
		h.Append(metrics.Snapshot{Iteration: it, PerPath: perPath})
	}
	return h
}

func TestFlagTerminalSwaps_FlagsChronicDRCPath(t *testing.T) {
	h := withDRCHistory(2, func(p int) bool { return p == 0 }, 20)
	paths := []control.PathInfo{{}, {}}

	flags, nonPseudoCount := control.FlagTerminalSwaps(paths, h)

	require.True(t, flags[0])
	require.False(t, flags[1])
	require.Equal(t, 1, nonPseudoCount)
}

func TestFlagTerminalSwaps_ExcusesSwapZoneAndPseudoNet(t *testing.T) {
	h := withDRCHistory(2, func(int) bool { return true }, 20)
	paths := []control.PathInfo{{InSwapZone: true}, {IsPseudoNet: true}}

	flags, nonPseudoCount := control.FlagTerminalSwaps(paths, h)

	require.False(t, flags[0])
	require.False(t, flags[1])
	require.Equal(t, 0, nonPseudoCount)
}

func TestFlagTerminalSwaps_PropagatesToPartnerAndPseudoParent(t *testing.T) {
	h := withDRCHistory(3, func(p int) bool { return p == 0 }, 20)
	paths := []control.PathInfo{
		{IsDiffPair: true, DiffPairPartner: 1, PseudoParent: 2},
		{IsDiffPair: true, DiffPairPartner: 0, PseudoParent: 2},
		{IsPseudoNet: true},
	}

	flags, nonPseudoCount := control.FlagTerminalSwaps(paths, h)

	require.True(t, flags[0])
	require.True(t, flags[1])
	require.True(t, flags[2])
	require.Equal(t, 2, nonPseudoCount) // the pseudo parent itself is excluded from the count
}

func TestFlagTerminalSwaps_CleanPathNotFlagged(t *testing.T) {
	h := withDRCHistory(1, func(int) bool { return false }, 20)
	paths := []control.PathInfo{{}}

	flags, nonPseudoCount := control.FlagTerminalSwaps(paths, h)

	require.False(t, flags[0])
	require.Equal(t, 0, nonPseudoCount)
}
