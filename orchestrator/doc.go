// Package orchestrator implements spec §4.8's per-iteration control loop:
// it owns the iteration counter, drives the adaptive controller (control),
// the path-finder (astar), the diff-pair post-processor (diffpair), the
// congestion feedback loop (congestion), and routability bookkeeping
// (metrics) each iteration, and decides when the run has converged. See
// DESIGN.md for why this loop runs the diff-pair optimizer ahead of the
// congestion deposit, a deliberate reordering of spec §4.8's own numbered
// outline.
//
// This is also where spec §7's ambient error-handling design and spec
// §6's external Config surface live: every other package in this module
// is a pure algorithm with no logging and no abort path of its own;
// orchestrator.Run is the one place that logs (via log/slog) and the one
// place a structural precondition violation becomes a FatalError instead
// of a plain wrapped error.
package orchestrator
