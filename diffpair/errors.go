package diffpair

import "errors"

// Sentinel errors for the diff-pair optimizer, per spec §7's error kinds.
var (
	// ErrMisalignedChildren indicates a pseudo-path's two shoulder children
	// don't have one coordinate per centerline cell, so connections cannot
	// be read off by index.
	ErrMisalignedChildren = errors.New("diffpair: child path lengths do not match the pseudo-path centerline")
	// ErrConnectionDegenerate indicates that one child's start coordinate
	// equals both end coordinates of a connection, so no orientation can be
	// forced from the coincidence (an invariant violation, fatal).
	ErrConnectionDegenerate = errors.New("diffpair: a connection start coordinate equals both of its end coordinates")
	// ErrGapTooLarge indicates findShortPathHeuristically was asked to
	// bridge a gap larger than the 5-lateral-cell, same-layer bound spec
	// §4.6 allows; structural precondition, fatal.
	ErrGapTooLarge = errors.New("diffpair: gap-filler bridge exceeds the 5-cell same-layer bound")
	// ErrNoLegalBridge indicates every candidate gap-filler bridge was
	// illegal (unwalkable or out of bounds).
	ErrNoLegalBridge = errors.New("diffpair: no legal gap-filler bridge found")
	// ErrSubMapExpansionLimit indicates the sub-map A* comparison's
	// bounding-box scale factor k grew past twice the sub-map diagonal
	// without converging; fatal per spec §7.
	ErrSubMapExpansionLimit = errors.New("diffpair: sub-map routing radius exceeded twice the sub-map diagonal")
	// ErrTwinsDisagree indicates a pseudo-path's two diff-pair twins
	// disagree on diff_pair_terms_swapped; invariant violation, fatal.
	ErrTwinsDisagree = errors.New("diffpair: diff-pair twins disagree on terminal-swap state")
)
