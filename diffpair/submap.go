package diffpair

import (
	"context"
	"math"

	"github.com/acorn-router/acorn/astar"
	"github.com/acorn-router/acorn/congestion"
	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
	"github.com/acorn-router/acorn/metrics"
)

// SubMapMaxIterations is subMap_maxIterations from the glossary: a
// "core-defined, single-digit upper bound" on the sub-map A* comparison
// loop. Fixed at 6: enough for the early-stop conditions below (each with
// their own multi-vote lookback) to have a chance to fire at least once
// beyond their own window.
const SubMapMaxIterations = 6

// SubMapConfig parameterizes decideBySubMap (spec §4.6 rung 4).
type SubMapConfig struct {
	Parent                       *gridstore.Grid
	BaseCosts                    geometry.BaseCosts
	Mask                         geometry.DirMask
	Child1PathNum, Child2PathNum int
	Subset                       int
	// GapRoutingRadiusCells is the pseudo-path's gap-routing radius at
	// scale k=1; decideBySubMap multiplies it by k on each retry.
	GapRoutingRadiusCells int
	// TraceMultiplier and ViaMultiplier are the current iteration's
	// congestion multipliers (see the congestion package), carried into
	// the sub-map's own A* comparisons so the deposited terminal
	// congestion actually steers the two trial routes.
	TraceMultiplier, ViaMultiplier int64
	// DRCRules and Subsets, if non-nil, gate the early-stop condition on
	// "the chosen configuration is DRC-free for the two children." Nil
	// DRCRules treats every candidate as DRC-free, skipping that check.
	DRCRules metrics.DRCRules
	Subsets  metrics.SubsetResolver
}

// decideBySubMap implements spec §4.6 rung 4: build a bounding box around
// the connection's four terminals scaled by k (growing by 1 on failure),
// copy the parent grid within it excluding the two children, and run up to
// SubMapMaxIterations rounds of paired A* comparisons.
func decideBySubMap(ctx context.Context, conn Connection, cfg SubMapConfig) (DecisionResult, error) {
	for k := 1; ; k++ {
		lowX, lowY, highX, highY := boundingBox(conn, k)
		exclude := map[int]bool{cfg.Child1PathNum: true, cfg.Child2PathNum: true}
		sub, err := cfg.Parent.SubMap(lowX, lowY, highX, highY, exclude)
		if err != nil {
			return DecisionResult{}, err
		}

		diag := math.Hypot(float64(sub.Width), float64(sub.Height))
		if float64(k) > 2*diag {
			return DecisionResult{}, ErrSubMapExpansionLimit
		}

		allTerminalsInWindow := true
		for _, c := range []geometry.Coordinate{conn.StartCoord1, conn.StartCoord2, conn.EndCoord1, conn.EndCoord2} {
			if !sub.InBounds(sub.FromParent(c)) {
				allTerminalsInWindow = false
				break
			}
		}
		if !allTerminalsInWindow {
			continue // terminal fell outside this k's window; grow and retry
		}

		result, ok, err := runSubMapIterations(ctx, sub, conn, cfg, k)
		if err != nil {
			return DecisionResult{}, err
		}
		if ok {
			return result, nil
		}
	}
}

// boundingBox returns the parent-grid-frame bounding box of conn's four
// terminals, expanded by a margin proportional to k.
func boundingBox(conn Connection, k int) (lowX, lowY, highX, highY int) {
	coords := []geometry.Coordinate{conn.StartCoord1, conn.StartCoord2, conn.EndCoord1, conn.EndCoord2}
	lowX, lowY = coords[0].X, coords[0].Y
	highX, highY = coords[0].X, coords[0].Y
	for _, c := range coords[1:] {
		if c.X < lowX {
			lowX = c.X
		}
		if c.X > highX {
			highX = c.X
		}
		if c.Y < lowY {
			lowY = c.Y
		}
		if c.Y > highY {
			highY = c.Y
		}
	}
	margin := k * 4
	return lowX - margin, lowY - margin, highX + margin, highY + margin
}

func runSubMapIterations(ctx context.Context, sub *gridstore.Grid, conn Connection, cfg SubMapConfig, k int) (DecisionResult, bool, error) {
	restriction := astar.RoutingRestriction{
		RestrictionFlag:   true,
		AllowedLayers:     allLayers(sub.Layers),
		AllowedRadiiCells: radiiForLayers(sub.Layers, cfg.GapRoutingRadiusCells*k),
		CenterX:           sub.Width / 2,
		CenterY:           sub.Height / 2,
	}

	s1, s2 := sub.FromParent(conn.StartCoord1), sub.FromParent(conn.StartCoord2)
	e1, e2 := sub.FromParent(conn.EndCoord1), sub.FromParent(conn.EndCoord2)

	subsets := cfg.Subsets
	if subsets == nil {
		subsets = staticSubsetResolver(cfg.Subset)
	}
	model := congestion.NewModel(sub, cfg.TraceMultiplier, cfg.ViaMultiplier, subsets)

	var votes []SwapDecision
	var ratios []float64

	for iter := 0; iter < SubMapMaxIterations; iter++ {
		_ = sub.AddCongestionAroundTerminal(s1, cfg.Child1PathNum, cfg.Subset, conn.StartShape1, geometry.ONE_TRAVERSAL)
		_ = sub.AddCongestionAroundTerminal(s2, cfg.Child2PathNum, cfg.Subset, conn.StartShape2, geometry.ONE_TRAVERSAL)
		_ = sub.AddCongestionAroundTerminal(e1, cfg.Child1PathNum, cfg.Subset, conn.EndShape1, geometry.ONE_TRAVERSAL)
		_ = sub.AddCongestionAroundTerminal(e2, cfg.Child2PathNum, cfg.Subset, conn.EndShape2, geometry.ONE_TRAVERSAL)

		_ = sub.EvaporatePathCongestion(ctx, cfg.Child1PathNum, 10)
		_ = sub.EvaporatePathCongestion(ctx, cfg.Child2PathNum, 10)

		un1, ok1, err := astar.Search(sub, s1, e1, astar.Options{Mask: cfg.Mask, Shape: conn.StartShape1, PathNum: cfg.Child1PathNum, BaseCosts: cfg.BaseCosts, Congestion: model, Restriction: restriction})
		if err != nil {
			return DecisionResult{}, false, err
		}
		un2, ok2, err := astar.Search(sub, s2, e2, astar.Options{Mask: cfg.Mask, Shape: conn.StartShape2, PathNum: cfg.Child2PathNum, BaseCosts: cfg.BaseCosts, Congestion: model, Restriction: restriction})
		if err != nil {
			return DecisionResult{}, false, err
		}
		sw1, ok3, err := astar.Search(sub, s1, e2, astar.Options{Mask: cfg.Mask, Shape: conn.StartShape1, PathNum: cfg.Child1PathNum, BaseCosts: cfg.BaseCosts, Congestion: model, Restriction: restriction})
		if err != nil {
			return DecisionResult{}, false, err
		}
		sw2, ok4, err := astar.Search(sub, s2, e1, astar.Options{Mask: cfg.Mask, Shape: conn.StartShape2, PathNum: cfg.Child2PathNum, BaseCosts: cfg.BaseCosts, Congestion: model, Restriction: restriction})
		if err != nil {
			return DecisionResult{}, false, err
		}
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return DecisionResult{}, false, nil // caller grows k and retries
		}

		unswappedTotal := un1.GCost + un2.GCost
		swappedTotal := sw1.GCost + sw2.GCost
		var ratio float64
		if unswappedTotal+swappedTotal == 0 {
			ratio = 0.5
		} else {
			ratio = float64(unswappedTotal) / float64(unswappedTotal+swappedTotal)
		}
		vote := NotSwapped
		if ratio > 0.5 {
			vote = Swapped
		}
		votes = append(votes, vote)
		ratios = append(ratios, ratio)

		if stopEarly(votes, ratios) && drcFreeForChosen(sub, vote, un1, un2, sw1, sw2, conn, cfg) {
			return DecisionResult{Decision: vote, SymmetryRatio: ratio, Method: MethodSubMap}, true, nil
		}
	}

	if len(ratios) == 0 {
		return DecisionResult{}, false, nil
	}
	last := ratios[len(ratios)-1]
	dec := NotSwapped
	if last > 0.5 {
		dec = Swapped
	}
	return DecisionResult{Decision: dec, SymmetryRatio: last, Method: MethodSubMap}, true, nil
}

// stopEarly implements spec §4.6's compound early-stop condition: the last
// 5 votes agree, the last 3 ratios are within 1e-4 of each other, and
// either the current ratio is outside [0.495, 0.505] or three identical
// ratios sit inside that band.
func stopEarly(votes []SwapDecision, ratios []float64) bool {
	if len(votes) < 5 {
		return false
	}
	last := votes[len(votes)-1]
	for _, v := range votes[len(votes)-5:] {
		if v != last {
			return false
		}
	}
	if len(ratios) < 3 {
		return false
	}
	last3 := ratios[len(ratios)-3:]
	maxR, minR := last3[0], last3[0]
	for _, r := range last3 {
		if r > maxR {
			maxR = r
		}
		if r < minR {
			minR = r
		}
	}
	if maxR-minR > 1e-4 {
		return false
	}

	current := ratios[len(ratios)-1]
	outsideBand := current < 0.495 || current > 0.505
	threeIdenticalInBand := (maxR - minR) == 0
	return outsideBand || threeIdenticalInBand
}

// drcFreeForChosen marks the chosen configuration's two routes into sub as
// path centerlines and checks them against DRCRules, if configured. With a
// nil DRCRules (the common case in sub-maps too small to carry rules) this
// always reports true, matching "treat as DRC-free" rather than stalling
// the loop on a check it cannot perform.
func drcFreeForChosen(sub *gridstore.Grid, vote SwapDecision, un1, un2, sw1, sw2 astar.Result, conn Connection, cfg SubMapConfig) bool {
	if cfg.DRCRules == nil {
		return true
	}
	var r1, r2 astar.Result
	if vote == NotSwapped {
		r1, r2 = un1, un2
	} else {
		r1, r2 = sw1, sw2
	}
	for _, c := range r1.Path {
		_ = sub.AddPathCenterInfo(c, cfg.Child1PathNum, conn.StartShape1)
	}
	for _, c := range r2.Path {
		_ = sub.AddPathCenterInfo(c, cfg.Child2PathNum, conn.StartShape2)
	}
	subsets := cfg.Subsets
	if subsets == nil {
		subsets = staticSubsetResolver(cfg.Subset)
	}
	numPaths := cfg.Child1PathNum + 1
	if cfg.Child2PathNum+1 > numPaths {
		numPaths = cfg.Child2PathNum + 1
	}
	res := metrics.DetectDRCs(sub, cfg.DRCRules, subsets, numPaths, cfg.GapRoutingRadiusCells+1)
	return res.PathDRCCells[cfg.Child1PathNum] == 0 && res.PathDRCCells[cfg.Child2PathNum] == 0
}

type staticSubsetResolver int

func (s staticSubsetResolver) SubsetFor(int) int { return int(s) }

func allLayers(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}

func radiiForLayers(n, radius int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = radius
	}
	return out
}
