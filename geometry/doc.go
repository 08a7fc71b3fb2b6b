// Package geometry provides the direction, cost, and distance primitives
// shared by every other package in the router core: the 18-direction lattice
// move set, the allowed-direction bitmask algebra, the A* admissible
// heuristic, and the per-move distance (G-cost) and via-congestion
// calculations.
//
// Nothing in this package touches a cell grid directly; it is handed the
// values it needs (cost multipliers, pin-swap membership, congestion
// lookups) through small interfaces so that gridstore and astar can both
// depend on it without a cyclic import.
//
// Complexity notes are per-function; none of these primitives allocate on
// their hot path.
package geometry

// ONE_TRAVERSAL is the canonical unit of one full traversal of a cell: all
// costs in this module are expressed in units of (cell · ONE_TRAVERSAL) so
// that fractional multipliers (e.g. a 1.41x diagonal factor) still round to
// an integer.
const ONE_TRAVERSAL = 100
