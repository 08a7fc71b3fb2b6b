// Package astar implements the single-net shortest-path search described in
// spec §4.3: A* over the 18-direction lattice, with optional layer/radius
// routing restrictions and multi-source pin-swap-zone seeding.
//
// Search operates directly against a *gridstore.Grid rather than through
// the narrower geometry.CellView/CongestionView interfaces, since the open
// set needs the grid's per-cell A*-scratch backpointers (gCost, hCost,
// parent direction, heap index) that those interfaces intentionally don't
// expose. Congestion penalties are supplied by the caller through the
// CongestionModel interface so this package never needs to import the
// congestion feedback loop.
//
// Complexity: O((V + E) log V) where V is the number of cells explored and
// E ≤ 18V, same bound as the teacher's Dijkstra, but with the admissible
// heuristic pruning search to a fraction of V in practice.
package astar
