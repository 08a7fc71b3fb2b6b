package gridstore

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/acorn-router/acorn/geometry"
)

// DesignRuleSetAt returns c's assigned design-rule set index, used by
// metrics.DetectDRCs to resolve the spacing table that applies at c.
func (g *Grid) DesignRuleSetAt(c geometry.Coordinate) int {
	if !g.InBounds(c) {
		return 0
	}
	return g.At(c).DesignRuleSet
}

// DRCAt returns c's accumulated DRC flag bits.
func (g *Grid) DRCAt(c geometry.Coordinate) DRCFlag {
	if !g.InBounds(c) {
		return 0
	}
	return g.At(c).DRC
}

// SetDRC ORs flag into c's DRC bits. metrics.DetectDRCs is the sole writer.
func (g *Grid) SetDRC(c geometry.Coordinate, flag DRCFlag) error {
	cell, err := g.CellAt(c)
	if err != nil {
		return err
	}
	cell.DRC |= flag
	return nil
}

// ClearDRC resets every cell's DRC bits to zero, called once at the start
// of each iteration's DetectDRCs pass so stale flags from a previous
// iteration never leak forward.
func (g *Grid) ClearDRC() {
	for i := range g.cells {
		g.cells[i].DRC = 0
	}
}

// NearANetAt reports whether c was flagged by MarkCellsNearCenterlines.
func (g *Grid) NearANetAt(c geometry.Coordinate) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.At(c).NearANet
}

// MarkCellsNearCenterlines flags NearANet on every cell within radiusCells
// (Euclidean, same layer) of any coordinate in pathCenterlines, per spec
// §4.8/§9's markCellsNearCenterlinesInMap. Spec §5 asks for this to be
// "parallelizable if atomic single-bit writes are available"; rather than
// reach for an atomic bit-set this partitions the fork-join by Z layer, the
// same discipline EvaporateCongestion uses, so each goroutine only ever
// writes cells on its own layer and two goroutines can never race on the
// same Cell.NearANet.
func (g *Grid) MarkCellsNearCenterlines(ctx context.Context, pathCenterlines map[int][]geometry.Coordinate, radiusCells int) error {
	r2 := radiusCells * radiusCells
	grp, _ := errgroup.WithContext(ctx)
	for z := 0; z < g.Layers; z++ {
		z := z
		grp.Go(func() error {
			for _, cells := range pathCenterlines {
				for _, center := range cells {
					if center.Z != z {
						continue
					}
					for dy := -radiusCells; dy <= radiusCells; dy++ {
						for dx := -radiusCells; dx <= radiusCells; dx++ {
							if dx*dx+dy*dy > r2 {
								continue
							}
							c := geometry.Coordinate{X: center.X + dx, Y: center.Y + dy, Z: z}
							if !g.InBounds(c) {
								continue
							}
							g.At(c).NearANet = true
						}
					}
				}
			}
			return nil
		})
	}
	return grp.Wait()
}
