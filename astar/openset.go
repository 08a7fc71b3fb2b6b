package astar

import (
	"container/heap"

	"github.com/acorn-router/acorn/geometry"
	"github.com/acorn-router/acorn/gridstore"
)

// openSet is a container/heap priority queue ordered by fCost, tie-broken
// by hCost then by insertion order (spec §4.3). Unlike the teacher's
// nodePQ (which pushes duplicates and lets visited-checks discard stale
// entries), this is a true indexed heap: each cell's gridstore scratch
// carries a heapIndex backpointer, so decreaseKey runs heap.Fix in place
// instead of growing the heap with dead entries — the structure spec §4.3
// asks for explicitly ("an indexed heap with backpointers from cell to
// heap position").
type openSet struct {
	grid    *gridstore.Grid
	items   []geometry.Coordinate
	seq     []int64
	counter int64
}

func newOpenSet(grid *gridstore.Grid) *openSet {
	return &openSet{grid: grid}
}

func (s *openSet) Len() int { return len(s.items) }

func (s *openSet) Less(i, j int) bool {
	a, b := s.items[i], s.items[j]
	fa, fb := s.grid.FCost(a), s.grid.FCost(b)
	if fa != fb {
		return fa < fb
	}
	ha, hb := s.grid.HCost(a), s.grid.HCost(b)
	if ha != hb {
		return ha < hb
	}
	return s.seq[i] < s.seq[j]
}

func (s *openSet) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.seq[i], s.seq[j] = s.seq[j], s.seq[i]
	s.grid.SetHeapIndex(s.items[i], i)
	s.grid.SetHeapIndex(s.items[j], j)
}

func (s *openSet) Push(x any) {
	c := x.(geometry.Coordinate)
	s.grid.SetHeapIndex(c, len(s.items))
	s.items = append(s.items, c)
	s.seq = append(s.seq, s.counter)
	s.counter++
}

func (s *openSet) Pop() any {
	n := len(s.items)
	c := s.items[n-1]
	s.items = s.items[:n-1]
	s.seq = s.seq[:n-1]
	s.grid.SetHeapIndex(c, -1)
	return c
}

// pushOrFix inserts c if it is not already queued, or runs heap.Fix if it
// is — the decrease-key half of the indexed-heap contract.
func (s *openSet) pushOrFix(c geometry.Coordinate) {
	if idx := s.grid.HeapIndex(c); idx >= 0 {
		heap.Fix(s, idx)
		return
	}
	heap.Push(s, c)
}

func (s *openSet) popMin() geometry.Coordinate {
	return heap.Pop(s).(geometry.Coordinate)
}
