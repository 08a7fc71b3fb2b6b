// Package control implements the adaptive controller of spec §4.7: the
// per-path terminal-swap test, the six-step congestion-sensitivity ladder
// and its 26-condition truth table, dominance-based targeting of trace vs.
// via sensitivity, pseudo-via TRACE repulsion eligibility, and the
// per-iteration ordering policy that picks at most one algorithm change.
//
// Every decision here is a pure function of metrics.History and the
// controller's own State; control never mutates a gridstore.Grid or runs
// A* itself, leaving that to the orchestrator once a decision is made.
package control
