package control

import "github.com/acorn-router/acorn/metrics"

// PseudoViaEligibility reports, for every (pseudoPath, layer) pair, whether
// its DRC shift register shows a DRC in every one of the last
// metrics.ReEquilibrateWindow iterations: the condition spec §4.7 uses to
// make a (pseudoPath, layer) pair eligible for the addPseudoTraceCongestionNearVias
// flag. pseudoPath indices here are whatever indexing the orchestrator used
// when calling history.UpdateDRCShiftRegister; this function only reads
// back what was recorded there.
func PseudoViaEligibility(history *metrics.History, numPseudoPaths, numLayers int) (eligible [][]bool, count int) {
	eligible = make([][]bool, numPseudoPaths)
	for pp := 0; pp < numPseudoPaths; pp++ {
		eligible[pp] = make([]bool, numLayers)
		for layer := 0; layer < numLayers; layer++ {
			if history.ShiftRegisterAllOnes(pp, layer) {
				eligible[pp][layer] = true
				count++
			}
		}
	}
	return eligible, count
}
