package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/acorn-router/acorn/astar"
	"github.com/acorn-router/acorn/congestion"
	"github.com/acorn-router/acorn/control"
	"github.com/acorn-router/acorn/diffpair"
	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
	"github.com/acorn-router/acorn/metrics"
)

// Run drives spec §4.8's iteration loop to completion against grid: each
// pass after the first asks the adaptive controller what to change given
// the metrics so far; every pass then routes every real path with A*, lets
// the diff-pair optimizer rewrite pseudo-path children, evaporates and
// re-deposits congestion, computes routability metrics, and tests
// determineIfSolved. It returns once solved or once
// cfg.MaxIterations is reached; RunResult.StoppedAtCap distinguishes the
// two outcomes the way the spec's anytime-algorithm framing requires
// (§1: "reports the best iteration seen" either way).
//
// logger may be nil, in which case slog.Default() is used (spec
// SPEC_FULL.md §A.1).
func Run(ctx context.Context, grid *gridstore.Grid, spec RunSpec, cfg Config, logger *slog.Logger) (RunResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := validateRunSpec(spec); err != nil {
		return RunResult{}, err
	}

	paths := make(map[int]PathSpec, len(spec.Paths))
	for _, p := range spec.Paths {
		paths[p.PathNum] = p
	}

	numPaths := spec.numPaths()
	totalPaths := spec.totalPaths()
	subsets := spec.subsets()

	history := metrics.NewHistory(totalPaths, spec.NumLayers)
	state := control.NewState()
	pseudoRepulsion := make(map[int]map[int]bool) // pseudo-path PathNum -> layer -> enabled

	result := RunResult{
		FinalPaths:      make(map[int]PathResult),
		History:         history,
		ControllerState: state,
	}

	cumulativeDRCFree := 0
	firstThresholdIteration := 0

	for iteration := 1; iteration <= cfg.MaxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		ratio := congestion.IterationRatio(iteration, numPaths)

		var decisions control.Decisions
		if iteration > 1 {
			decisions = stepController(iteration, cfg, spec, paths, history, state, pseudoRepulsion, cumulativeDRCFree, logger)
		}

		traceMult := congestion.Multiplier(ratio, sensitivityPercent(state.Trace.CurrentIndex))
		viaMult := congestion.Multiplier(ratio, sensitivityPercent(state.Via.CurrentIndex))

		var congModel astar.CongestionModel = astar.NoCongestion{}
		if iteration > 1 {
			congModel = congestion.NewModel(grid, traceMult, viaMult, subsets)
		}

		searchResults, contiguous, err := routeAll(grid, spec, paths, congModel, iteration, logger)
		if err != nil {
			return result, err
		}

		if err := runDiffPairOptimizer(ctx, grid, spec, paths, contiguous, traceMult, viaMult, subsets, iteration); err != nil {
			return result, err
		}

		if err := depositCongestion(ctx, grid, spec, paths, contiguous, pseudoRepulsion, traceMult, viaMult); err != nil {
			return result, fatal(iteration, -1, geometry.Coordinate{}, geometry.Coordinate{}, err)
		}

		snapshot := buildSnapshot(grid, spec, cfg, numPaths, iteration, searchResults, contiguous)
		history.Append(snapshot)
		updateShiftRegisters(history, spec, snapshot)

		inPlateau := history.DeterminePlateau()
		snapshot.InPlateau = inPlateau
		history.Snapshots[len(history.Snapshots)-1] = snapshot

		if snapshot.NonPseudoNumDRCCells == 0 {
			cumulativeDRCFree++
			if firstThresholdIteration == 0 && cumulativeDRCFree >= cfg.DRCFreeThreshold {
				firstThresholdIteration = iteration
			}
		}

		for num, cells := range contiguous {
			result.FinalPaths[num] = PathResult{
				PathNum:       num,
				NonContiguous: searchResults[num].Path,
				Contiguous:    cells,
				GCost:         searchResults[num].GCost,
			}
		}
		result.Iterations = append(result.Iterations, IterationLog{
			Iteration: iteration, Snapshot: snapshot, Decisions: decisions, InPlateau: inPlateau,
		})

		logger.Info("iteration complete",
			"iteration", iteration,
			"drc_cells", snapshot.NonPseudoNumDRCCells,
			"non_pseudo_cost", snapshot.TotalNonPseudoCost,
			"plateau", inPlateau)

		atCap := iteration >= cfg.MaxIterations
		solved := cumulativeDRCFree >= cfg.DRCFreeThreshold &&
			(numPaths <= 1 || inPlateau ||
				(firstThresholdIteration > 0 && iteration-firstThresholdIteration >= metrics.ReEquilibrateWindow) ||
				atCap)

		if solved || atCap {
			if best, ok := metrics.BestIteration(history, spec.HasUserCostMultipliers); ok {
				result.BestIteration = best
			}
			result.StoppedAtCap = atCap
			if solved {
				logger.Info("routing solved", "iteration", iteration, "best_iteration", result.BestIteration)
			} else {
				logger.Warn("reached iteration cap without solving", "max_iterations", cfg.MaxIterations)
			}
			return result, nil
		}
	}

	return result, nil
}

func validateRunSpec(spec RunSpec) error {
	numPaths := spec.numPaths()
	seen := make(map[int]bool, len(spec.Paths))
	for _, p := range spec.Paths {
		if p.PathNum < 0 || p.PathNum >= numPaths {
			return fmt.Errorf("orchestrator: path %d has out-of-range path number (numPaths=%d)", p.PathNum, numPaths)
		}
		if seen[p.PathNum] {
			return fmt.Errorf("orchestrator: duplicate path number %d", p.PathNum)
		}
		seen[p.PathNum] = true
	}
	for i, pp := range spec.PseudoPaths {
		want := numPaths + i
		if pp.PathNum != want {
			return fmt.Errorf("orchestrator: pseudo-path at index %d must have PathNum %d (got %d), per spec §3's contiguous numbering", i, want, pp.PathNum)
		}
	}
	return nil
}

// routeAll runs astar.Search for every real path in path-number order
// (spec §5: "the main per-iteration A* calls run serially in path order").
func routeAll(grid *gridstore.Grid, spec RunSpec, paths map[int]PathSpec, congModel astar.CongestionModel, iteration int, logger *slog.Logger) (map[int]astar.Result, map[int][]geometry.Coordinate, error) {
	results := make(map[int]astar.Result, len(paths)+len(spec.PseudoPaths))
	contiguous := make(map[int][]geometry.Coordinate, len(paths)+len(spec.PseudoPaths))

	route := func(num int, subset int, shape geometry.ShapeType, mask geometry.DirMask, start, end geometry.Coordinate) error {
		res, found, err := astar.Search(grid, start, end, astar.Options{
			Mask: mask, Shape: shape, PathNum: num,
			BaseCosts: spec.BaseCosts, Congestion: congModel,
			Restriction: astar.NoRestriction(),
		})
		if err != nil {
			return fatal(iteration, num, start, end, err)
		}
		if !found {
			logger.Warn("path search failed", "iteration", iteration, "path", num, "start", start, "end", end)
			return fmt.Errorf("%w: iteration %d path %d (%v -> %v)", ErrPathSearchFailed, iteration, num, start, end)
		}
		results[num] = res
		contiguous[num] = astar.ExpandContiguous(res.Path)
		return nil
	}

	for num := 0; num < spec.numPaths(); num++ {
		p, ok := paths[num]
		if !ok {
			return nil, nil, fmt.Errorf("orchestrator: no PathSpec for path number %d", num)
		}
		if err := route(num, p.Subset, p.Shape, p.Mask, p.Start, p.End); err != nil {
			return nil, nil, err
		}
	}
	for _, pp := range spec.PseudoPaths {
		if err := route(pp.PathNum, pp.Subset, geometry.ShapeTrace, pp.Mask, pp.Start, pp.End); err != nil {
			return nil, nil, err
		}
	}
	return results, contiguous, nil
}

// runDiffPairOptimizer runs diffpair.Optimize for every pseudo-path and
// overwrites the two children's contiguous coordinate lists in place with
// the re-stitched result (spec §4.6's output feeds directly into the
// congestion deposit and metrics steps that follow, see DESIGN.md for why
// this orchestrator runs the optimizer before depositing congestion rather
// than after, as §4.8's numbered list suggests).
func runDiffPairOptimizer(ctx context.Context, grid *gridstore.Grid, spec RunSpec, paths map[int]PathSpec, contiguous map[int][]geometry.Coordinate, traceMult, viaMult int64, subsets subsetMap, iteration int) error {
	for _, pp := range spec.PseudoPaths {
		child1, ok1 := paths[pp.Child1PathNum]
		_, ok2 := paths[pp.Child2PathNum]
		if !ok1 || !ok2 {
			return fatal(iteration, pp.PathNum, pp.Start, pp.End, ErrUnknownPseudoLink)
		}
		centerline := contiguous[pp.PathNum]

		input := diffpair.PseudoPathInput{
			Child1PathNum: pp.Child1PathNum,
			Child2PathNum: pp.Child2PathNum,
			Subset:        pp.Subset,
			Centerline:    centerline,
			Child1:        contiguous[pp.Child1PathNum],
			Child2:        contiguous[pp.Child2PathNum],
			IsVia: func(idx int) bool {
				if idx <= 0 || idx >= len(centerline) {
					return false
				}
				return centerline[idx-1].Z != centerline[idx].Z
			},
			// No per-connection prior-iteration DRC history is tracked
			// (see DESIGN.md); every connection is treated as DRC-clean
			// going into the geometric test, the same "optimistic until
			// proven otherwise" stance iteration 1 takes for congestion.
			DRCClean:    func(int, int) bool { return true },
			InSwapZone:  grid.InPinSwapZone,
			PNSwappable: pp.PNSwappable,
		}
		subCfg := diffpair.SubMapConfig{
			Parent:                grid,
			BaseCosts:             spec.BaseCosts,
			Mask:                  child1.Mask,
			Child1PathNum:         pp.Child1PathNum,
			Child2PathNum:         pp.Child2PathNum,
			Subset:                pp.Subset,
			GapRoutingRadiusCells: pp.GapRoutingRadiusCells,
			TraceMultiplier:       traceMult,
			ViaMultiplier:         viaMult,
			DRCRules:              spec.DRCRules,
			Subsets:               subsets,
		}

		out, err := diffpair.Optimize(ctx, grid, input, diffpair.GridDominance{Grid: grid}, pp.GapRoutingRadiusCells, subCfg)
		if err != nil {
			return fatal(iteration, pp.PathNum, pp.Start, pp.End, err)
		}
		contiguous[pp.Child1PathNum] = out.Child1
		contiguous[pp.Child2PathNum] = out.Child2
	}
	return nil
}

// depositCongestion runs spec §4.4's feedback loop: evaporate, then
// deposit centerline/terminal congestion for every real path (using the
// diff-pair-optimized coordinates where the path is a shoulder child),
// plus any pseudo-via trace repulsion the controller has enabled.
func depositCongestion(ctx context.Context, grid *gridstore.Grid, spec RunSpec, paths map[int]PathSpec, contiguous map[int][]geometry.Coordinate, pseudoRepulsion map[int]map[int]bool, traceMult, viaMult int64) error {
	routed := make([]congestion.RoutedPath, 0, len(paths))
	for num := 0; num < spec.numPaths(); num++ {
		p := paths[num]
		routed = append(routed, congestion.RoutedPath{
			PathNum: num, Subset: p.Subset, Shape: p.Shape, Cells: contiguous[num],
		})
	}

	var pseudoVias []congestion.PseudoVia
	for _, pp := range spec.PseudoPaths {
		layers := pseudoRepulsion[pp.PathNum]
		if len(layers) == 0 {
			continue
		}
		cl := contiguous[pp.PathNum]
		for i := 1; i < len(cl); i++ {
			if cl[i-1].Z == cl[i].Z {
				continue
			}
			z := cl[i].Z
			if !layers[z] || z == 0 || z == spec.NumLayers-1 {
				continue // top and bottom layers skipped: no via could escape there (spec §4.4 step 4)
			}
			pseudoVias = append(pseudoVias, congestion.PseudoVia{
				PathNum: spec.UniversalRepellent,
				Subset:  pp.Subset,
				Site:    cl[i],
				Amount:  50 * congestion.DefaultCellCost,
			})
		}
	}

	return congestion.Run(ctx, grid, routed, pseudoVias, traceMult, viaMult)
}

// buildSnapshot assembles one iteration's metrics.Snapshot (spec §4.5)
// from the DRC scan and the per-path search results.
func buildSnapshot(grid *gridstore.Grid, spec RunSpec, cfg Config, numPaths, iteration int, searchResults map[int]astar.Result, contiguous map[int][]geometry.Coordinate) metrics.Snapshot {
	subsets := spec.subsets()
	drcRes := metrics.DetectDRCs(grid, spec.DRCRules, subsets, spec.totalPaths(), maxInt(1, cfg.MaxDRCSearchRadius))

	perPath := make([]metrics.PathStats, numPaths)
	nonPseudoLengths := make([]int, numPaths)
	nonPseudoViaCounts := make([]int, numPaths)
	nonPseudoCosts := make([]int64, numPaths)
	var totalNonPseudoCost int64
	numNonPseudoDRCNets := 0

	for num := 0; num < numPaths; num++ {
		cells := contiguous[num]
		lateral, diagonal, knight, via := classifySteps(searchResults[num].Path)
		gcost := searchResults[num].GCost
		stats := metrics.PathStats{
			PathCost:        gcost,
			LateralLength:   maxInt(0, len(cells)-1),
			AdjacentSteps:   lateral,
			DiagonalSteps:   diagonal,
			KnightSteps:     knight,
			ViaCount:        via,
			DRCCells:        drcRes.PathDRCCells[num],
			DRCCellsByLayer: drcRes.PathDRCByLayer[num],
		}
		perPath[num] = stats
		nonPseudoLengths[num] = stats.LateralLength
		nonPseudoViaCounts[num] = via
		nonPseudoCosts[num] = gcost
		totalNonPseudoCost += gcost
		if stats.DRCCells > 0 {
			numNonPseudoDRCNets++
		}
	}

	return metrics.Snapshot{
		Iteration:              iteration,
		PerPath:                perPath,
		Crossing:                drcRes.Ledger,
		NonPseudoPathLengths:   nonPseudoLengths,
		NonPseudoNumDRCCells:   drcRes.TotalDRCCells,
		NonPseudoDRCTraceTrace: drcRes.TraceTraceCells,
		NonPseudoDRCViaVia:     drcRes.ViaViaCells,
		NonPseudoDRCTraceVia:   drcRes.TraceViaCells,
		NonPseudoViaCounts:     nonPseudoViaCounts,
		NonPseudoPathCosts:     nonPseudoCosts,
		TotalNonPseudoCost:     totalNonPseudoCost,
		NumNonPseudoDRCNets:    numNonPseudoDRCNets,
	}
}

// updateShiftRegisters shifts in this iteration's per-(pseudoPath,layer)
// DRC occurrence bit for every pseudo-path, from its two children's
// per-layer DRC counts (spec §4.5's "32-bit shift register").
func updateShiftRegisters(history *metrics.History, spec RunSpec, snapshot metrics.Snapshot) {
	for i, pp := range spec.PseudoPaths {
		for layer := 0; layer < spec.NumLayers; layer++ {
			had := false
			if pp.Child1PathNum < len(snapshot.PerPath) {
				had = had || layer < len(snapshot.PerPath[pp.Child1PathNum].DRCCellsByLayer) && snapshot.PerPath[pp.Child1PathNum].DRCCellsByLayer[layer] > 0
			}
			if pp.Child2PathNum < len(snapshot.PerPath) {
				had = had || layer < len(snapshot.PerPath[pp.Child2PathNum].DRCCellsByLayer) && snapshot.PerPath[pp.Child2PathNum].DRCCellsByLayer[layer] > 0
			}
			history.UpdateDRCShiftRegister(i, layer, had)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func classifySteps(path []geometry.Coordinate) (lateral, diagonal, knight, via int) {
	for i := 1; i < len(path); i++ {
		d := path[i].Sub(path[i-1])
		dir, ok := geometry.DirectionOf(d.DX, d.DY, d.DZ)
		if !ok {
			continue
		}
		switch dir.Class() {
		case geometry.ClassLateral:
			lateral++
		case geometry.ClassDiagonal:
			diagonal++
		case geometry.ClassKnight:
			knight++
		case geometry.ClassVertical:
			via++
		}
	}
	return
}

// stepController runs the adaptive controller's per-iteration update
// (spec §4.7): refresh the sensitivity ladders' measurements, flag
// terminal-swap candidates, assess pseudo-via eligibility, then call
// control.Decide and apply whichever single change it returns.
func stepController(iteration int, cfg Config, spec RunSpec, paths map[int]PathSpec, history *metrics.History, state *control.State, pseudoRepulsion map[int]map[int]bool, cumulativeDRCFree int, logger *slog.Logger) control.Decisions {
	state.Trace.InvalidateStale(iteration)
	state.Via.InvalidateStale(iteration)
	if len(history.Snapshots) > 0 {
		m := computeSensitivityMetrics(history, metrics.ReEquilibrateWindow)
		state.Trace.RecordMeasurement(iteration, m)
		state.Via.RecordMeasurement(iteration, m)
	}

	pathInfos := buildPathInfos(spec, paths)
	flags, eligibleSwapCount := control.FlagTerminalSwaps(pathInfos, history)
	eligiblePseudo, eligiblePseudoCount := control.PseudoViaEligibility(history, len(spec.PseudoPaths), spec.NumLayers)

	inputs := control.Inputs{
		CurrentIteration:                        iteration,
		InMetricsPlateau:                        history.DeterminePlateau(),
		CumulativeDRCFreeIterations:              cumulativeDRCFree,
		FractionRecentIterationsWithoutMapDRCs:   fractionIterationsWithoutMapDRCs(history, metrics.ReEquilibrateWindow),
		NumLayers:                                spec.NumLayers,
		EligibleTerminalSwapCount:                eligibleSwapCount,
		EligiblePseudoViaCount:                   eligiblePseudoCount,
		DRCShapes:                                sumRecentDRCShapes(history, metrics.ReEquilibrateWindow),
	}
	decisions := control.Decide(cfg.controlConfig(), inputs, state)

	if decisions.SwapStartAndEndTerms {
		for num, flagged := range flags {
			if !flagged {
				continue
			}
			if p, ok := paths[num]; ok {
				p.Start, p.End = p.End, p.Start
				paths[num] = p
				logger.Info("swapped terminals", "iteration", iteration, "path", num)
			}
		}
	}
	if decisions.EnablePseudoTraceCongestion {
		for i, row := range eligiblePseudo {
			if i >= len(spec.PseudoPaths) {
				continue
			}
			pathNum := spec.PseudoPaths[i].PathNum
			for layer, ok := range row {
				if !ok {
					continue
				}
				if pseudoRepulsion[pathNum] == nil {
					pseudoRepulsion[pathNum] = make(map[int]bool)
				}
				pseudoRepulsion[pathNum][layer] = true
			}
		}
		logger.Info("enabled pseudo-via trace repulsion", "iteration", iteration)
	}
	return decisions
}

func buildPathInfos(spec RunSpec, paths map[int]PathSpec) []control.PathInfo {
	total := spec.totalPaths()
	infos := make([]control.PathInfo, total)
	for num, p := range paths {
		infos[num] = control.PathInfo{
			InSwapZone:      p.InStartSwapZone,
			IsDiffPair:      p.IsDiffPair,
			DiffPairPartner: p.DiffPairPartner,
			PseudoParent:    p.PseudoParent,
		}
	}
	base := spec.numPaths()
	for i := range spec.PseudoPaths {
		infos[base+i] = control.PathInfo{IsPseudoNet: true}
	}
	return infos
}
