package gridstore

import "github.com/acorn-router/acorn/geometry"

// lateralOffsets are the four Manhattan steps pin-swap regions flood-fill
// across; swap zones are flat pad clusters on a single layer, so vertical
// and diagonal/knight adjacency play no part here.
var lateralOffsets = [4]geometry.Delta{
	{DX: 0, DY: -1}, {DX: 0, DY: 1}, {DX: 1, DY: 0}, {DX: -1, DY: 0},
}

// MarkSwapZone flags every cell in cells as belonging to pin-swap zone
// zoneID. Congestion already present on a cell entering the zone is
// cleared to uphold invariant 3 (swap-zone cells carry zero congestion).
func (g *Grid) MarkSwapZone(cells []geometry.Coordinate, zoneID int) error {
	for _, c := range cells {
		cell, err := g.CellAt(c)
		if err != nil {
			return err
		}
		cell.SwapZone = true
		cell.ZoneID = zoneID
		cell.congestion = nil
	}
	return nil
}

// ConnectedPinSwapRegion returns every cell reachable from start by lateral
// steps through cells sharing start's ZoneID, per spec §4.3: "every cell in
// the connected pin-swap region that shares the zone id is a valid start".
// If start is not itself in a swap zone, the region is just {start}.
//
// Grounded on the teacher's ConnectedComponents flood fill: a visited set
// plus FIFO queue, restricted here to same-zone-id swap cells instead of
// same-value land cells.
func (g *Grid) ConnectedPinSwapRegion(start geometry.Coordinate) ([]geometry.Coordinate, error) {
	startCell, err := g.CellAt(start)
	if err != nil {
		return nil, err
	}
	if !startCell.SwapZone {
		return []geometry.Coordinate{start}, nil
	}
	zoneID := startCell.ZoneID

	visited := map[geometry.Coordinate]bool{start: true}
	queue := []geometry.Coordinate{start}
	region := make([]geometry.Coordinate, 0, 8)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		region = append(region, cur)
		for _, d := range lateralOffsets {
			next := cur.Add(d)
			if visited[next] || !g.InBounds(next) {
				continue
			}
			nc := g.At(next)
			if !nc.SwapZone || nc.ZoneID != zoneID {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return region, nil
}
