// Package gridstore implements the 3-D cell lattice and its congestion
// store: the map of (X, Y, Z) cells that astar searches over and that the
// congestion feedback loop deposits into and evaporates.
//
// Each Cell carries forbidden-direction bits, design-rule and cost-
// multiplier indices, a handful of boolean flags (centerline, near-a-net,
// swap-zone, ...), and two sparse lists: congestion entries keyed by
// (path, design-rule subset, shape-type), and path-center entries keyed by
// (path, shape-type). Both lists elide zero-valued/duplicate entries so a
// mostly-empty grid stays cheap to hold in memory, mirroring the reference
// router's per-cell realloc'd arrays without the manual memory management.
//
// Grid implements geometry.CellView and geometry.CongestionView, so the
// geometry package's cost and via-congestion primitives operate on a Grid
// without gridstore needing to import astar or vice versa.
package gridstore
