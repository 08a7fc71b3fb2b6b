package diffpair

import (
	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

// GridDominance is the grid-backed DominanceResolver: it sums each
// candidate path's TraversalsX100 congestion deposit over every cell
// within radiusCells (Euclidean) of center and reports whichever candidate
// accumulated more.
type GridDominance struct {
	Grid *gridstore.Grid
}

// DominantChild implements DominanceResolver.
func (d GridDominance) DominantChild(center geometry.Coordinate, radiusCells int, child1PathNum, child2PathNum int) (int, bool) {
	var total1, total2 int64
	r2 := radiusCells * radiusCells
	for dy := -radiusCells; dy <= radiusCells; dy++ {
		for dx := -radiusCells; dx <= radiusCells; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			c := geometry.Coordinate{X: center.X + dx, Y: center.Y + dy, Z: center.Z}
			if !d.Grid.InBounds(c) {
				continue
			}
			for _, e := range d.Grid.CongestionEntriesAt(c) {
				switch e.PathNum {
				case child1PathNum:
					total1 += e.TraversalsX100
				case child2PathNum:
					total2 += e.TraversalsX100
				}
			}
		}
	}
	switch {
	case total1 == 0 && total2 == 0:
		return 0, false
	case total1 >= total2:
		return child1PathNum, true
	default:
		return child2PathNum, true
	}
}
