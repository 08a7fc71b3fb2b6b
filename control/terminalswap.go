package control

import "github.com/acorn-router/acorn/metrics"

// FlagTerminalSwaps implements the flagging pass of
// swap_start_and_end_terminals_of_DRC_paths: path p is flagged when its
// fraction of recent DRC-free iterations is below 0.5, unless it is
// excused by a pin-swap-zone start or pseudo-net status. Flagging a
// diff-pair child additionally flags its partner and its pseudo-parent.
// Performing the actual terminal exchange is the orchestrator's job; this
// function only decides which paths qualify.
//
// Returns the per-path flags and the count of flagged non-pseudo paths,
// the value the ordering policy's gating condition consults.
func FlagTerminalSwaps(paths []PathInfo, history *metrics.History) (flags []bool, nonPseudoCount int) {
	flags = make([]bool, len(paths))
	for p, info := range paths {
		if info.InSwapZone || info.IsPseudoNet {
			continue
		}
		if history.FractionRecentIterationsWithoutPathDRCs(p) >= 0.5 {
			continue
		}
		flags[p] = true
		if info.IsDiffPair {
			if info.DiffPairPartner >= 0 && info.DiffPairPartner < len(flags) {
				flags[info.DiffPairPartner] = true
			}
			if info.PseudoParent >= 0 && info.PseudoParent < len(flags) {
				flags[info.PseudoParent] = true
			}
		}
	}
	for p, info := range paths {
		if flags[p] && !info.IsPseudoNet {
			nonPseudoCount++
		}
	}
	return flags, nonPseudoCount
}
