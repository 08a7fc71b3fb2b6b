// Package diffpair implements the differential-pair post-processor of spec
// §4.6: connection detection along a pseudo-path, the swap-decision
// staircase (degenerate coincidence, geometric test, congestion-memory
// test, sub-map A* comparison), pseudo-path re-stitching, and the
// short-path heuristic gap-filler that stitching uses to patch small
// corrections without invoking the full path-finder.
package diffpair
