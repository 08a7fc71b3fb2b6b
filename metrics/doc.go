// Package metrics implements the routability metrics of spec §4.5: per-cell
// and per-path DRC detection, the crossing matrix, sliding-window DRC
// history, the plateau detector, and best-iteration selection.
//
// DetectDRCs is the sole writer of gridstore's DRC flag bits; everything
// else in this package is a pure function over the History it accumulates,
// so the orchestrator can call DeterminePlateau or BestIteration at any
// point without re-scanning the grid.
package metrics
