// Package congestion implements the pheromone-like feedback loop of spec
// §4.4: evaporation, centerline/terminal/pseudo-via deposit, and the
// iteration-dependent multiplier that scales how strongly repeated
// congestion steers later searches away from busy cells.
//
// Model adapts a *gridstore.Grid into an astar.CongestionModel so the
// path-finder never needs to know how a penalty was computed; it only
// calls TracePenalty/ViaPenalty.
package congestion
