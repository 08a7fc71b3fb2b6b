package congestion

import (
	"context"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

// RoutedPath is one path's result from a completed routing iteration,
// enough information for the feedback loop to deposit its centerline and
// terminal congestion. Cells must already be in the contiguous form
// astar.ExpandContiguous produces: every consecutive pair differs by one
// lateral or vertical step.
type RoutedPath struct {
	PathNum int
	Subset  int
	Shape   geometry.ShapeType
	Cells   []geometry.Coordinate
}

// PseudoVia is a forced-via site the adaptive controller has flagged for
// extra trace repulsion (spec §4.4 step 4: "pseudo-via TRACE repulsion",
// enabled only once the controller decides a layer-change is being
// avoided unproductively).
type PseudoVia struct {
	PathNum int
	Subset  int
	Site    geometry.Coordinate
	Amount  int64
}

// Run executes one full iteration of the congestion feedback loop against
// grid, per spec §4.4:
//  1. evaporate every non-universal-repellent entry by DefaultEvapRatePercent.
//  2. deposit one ONE_TRAVERSAL unit of trace/via congestion at every cell
//     each routed path's centerline crosses, and record the centerline
//     itself via AddPathCenterInfo.
//  3. deposit the design-rule-radius terminal congestion around both
//     endpoints of every routed path.
//  4. if pseudoVias is non-empty, deposit extra trace repulsion around
//     each flagged site (an optional step; callers that never ask the
//     controller to force a via pass nil/empty here).
//
// traceMultiplier and viaMultiplier are the outputs of Multiplier for the
// sensitivity currently assigned to each path's subset; the caller
// (orchestrator) computes these once per iteration from IterationRatio and
// the controller's sensitivity-ladder index, then passes them through
// independently (spec §4.4: "independently for trace and via").
func Run(ctx context.Context, grid *gridstore.Grid, paths []RoutedPath, pseudoVias []PseudoVia, traceMultiplier, viaMultiplier int64) error {
	if err := grid.EvaporateCongestion(ctx, DefaultEvapRatePercent); err != nil {
		return err
	}

	for _, p := range paths {
		if err := depositCenterline(grid, p, traceMultiplier, viaMultiplier); err != nil {
			return err
		}
		if err := depositTerminals(grid, p); err != nil {
			return err
		}
	}

	for _, pv := range pseudoVias {
		if err := grid.AddCongestionAroundTerminal(pv.Site, pv.PathNum, pv.Subset, geometry.ShapeTrace, pv.Amount); err != nil {
			return err
		}
	}
	return nil
}

// depositCenterline walks p's contiguous cell list, recording each cell as
// part of p's centerline and depositing one ONE_TRAVERSAL-scaled unit of
// congestion there, tagged with p's own shape for lateral cells and the
// via shape implied by a Z-changing step between consecutive cells. Lateral
// cells are scaled by traceMultiplier; via cells by the independently
// computed viaMultiplier (spec §4.4: "independently for trace and via").
func depositCenterline(grid *gridstore.Grid, p RoutedPath, traceMultiplier, viaMultiplier int64) error {
	for i, c := range p.Cells {
		shape := p.Shape
		mult := traceMultiplier
		if i > 0 && p.Cells[i-1].Z != c.Z {
			if c.Z > p.Cells[i-1].Z {
				shape = geometry.ShapeViaUp
			} else {
				shape = geometry.ShapeViaDown
			}
			mult = viaMultiplier
		}
		if err := grid.AddPathCenterInfo(c, p.PathNum, shape); err != nil {
			return err
		}
		deposit := DefaultCellCost * mult / 100
		if deposit <= 0 {
			deposit = 1
		}
		if err := grid.AddCongestion(c, p.PathNum, p.Subset, shape, deposit); err != nil {
			return err
		}
	}
	return nil
}

// depositTerminals deposits design-rule-radius congestion around the two
// endpoints of p (spec §4.4 step 3: terminals repel future searches more
// broadly than a bare centerline cell does, matching the physical keep-out
// a connector or via pad enforces). Per addCongestionAroundAllTerminals in
// the original source, all three shape types — TRACE, VIA_UP, VIA_DOWN —
// are deposited around both terminals, not just the path's own shape, so
// vias are repelled from landing on a terminal pad as much as traces are.
func depositTerminals(grid *gridstore.Grid, p RoutedPath) error {
	if len(p.Cells) == 0 {
		return nil
	}
	start, end := p.Cells[0], p.Cells[len(p.Cells)-1]
	for _, shape := range [...]geometry.ShapeType{geometry.ShapeTrace, geometry.ShapeViaUp, geometry.ShapeViaDown} {
		if err := grid.AddCongestionAroundTerminal(start, p.PathNum, p.Subset, shape, DefaultCellCost); err != nil && err != gridstore.ErrNoDesignRuleRadius {
			return err
		}
		if err := grid.AddCongestionAroundTerminal(end, p.PathNum, p.Subset, shape, DefaultCellCost); err != nil && err != gridstore.ErrNoDesignRuleRadius {
			return err
		}
	}
	return nil
}
