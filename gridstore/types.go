package gridstore

import "github.com/acorn-router/acorn/geometry"

// DRCFlag is a bitset of per-cell design-rule-check conditions. The three
// shape-pair categories line up with the crossing-matrix breakdown the
// metrics package reports (trace-trace, via-via, trace-via).
type DRCFlag uint8

const (
	DRCTraceTrace DRCFlag = 1 << iota
	DRCViaVia
	DRCTraceVia
)

// Has reports whether every bit set in want is also set in f.
func (f DRCFlag) Has(want DRCFlag) bool { return f&want == want }

// PathCenterEntry records that path Path's centerline of shape Shape
// crosses a cell. See Cell.Centers.
type PathCenterEntry struct {
	Path  int
	Shape geometry.ShapeType
}

// scratch is the A*-private per-cell search state described in spec §4.3.
// It is logically re-initialized before every search; Grid uses an epoch
// counter so a fresh search only needs to bump Grid.epoch instead of
// walking every cell.
type scratch struct {
	epoch     uint64
	parentDir geometry.Direction
	hasParent bool
	touched   bool // true once SetCosts has relaxed this cell at least once
	gCost     int64
	hCost     int64
	source    int
	open      bool
	closed    bool
	heapIndex int // position in the open-set's backing array, -1 when absent
}

// Cell holds one lattice point's static routing attributes, its two
// sparse per-path lists, and the transient A* scratch area. The sparse
// lists are plain slices: appends and removals are O(n) in the number of
// paths touching the cell, which stays small in practice (a handful of
// nets ever share a cell), so this trades asymptotic purity for the
// locality a dense struct-of-slices would lose.
type Cell struct {
	ForbidTrace            bool
	ForbidViaUp            bool
	ForbidViaDown          bool
	ForbidProximity        bool
	ForbidProximityPinSwap bool

	DesignRuleSet int
	TraceMultIdx  int
	ViaUpMultIdx  int
	ViaDownMultIdx int

	MetalFillTrace   bool
	MetalFillViaUp   bool
	MetalFillViaDown bool

	PseudoMetalFillTrace   bool
	PseudoMetalFillViaUp   bool
	PseudoMetalFillViaDown bool

	DRC DRCFlag

	CenterlineTrace   bool
	CenterlineViaUp   bool
	CenterlineViaDown bool

	NearANet bool
	SwapZone bool
	ZoneID   int

	congestion []geometry.CongestionEntry
	centers    []PathCenterEntry

	scratch scratch
}

// forbidden reports whether the cell forbids entry for the given shape.
func (c *Cell) forbidden(shape geometry.ShapeType) bool {
	switch shape {
	case geometry.ShapeTrace:
		return c.ForbidTrace
	case geometry.ShapeViaUp:
		return c.ForbidViaUp
	case geometry.ShapeViaDown:
		return c.ForbidViaDown
	default:
		return true
	}
}

// multiplierIndex returns the cost-multiplier table index for shape.
func (c *Cell) multiplierIndex(shape geometry.ShapeType) int {
	switch shape {
	case geometry.ShapeViaUp:
		return c.ViaUpMultIdx
	case geometry.ShapeViaDown:
		return c.ViaDownMultIdx
	default:
		return c.TraceMultIdx
	}
}

// DesignRules resolves cost-multiplier values and per-(subset,shape)
// interaction radii from design-rule indices. It is supplied by the
// ingestion layer (out of scope per spec §1) and consumed read-only here.
type DesignRules interface {
	// CostMultiplierX100 returns the multiplier (in percent, 100 = 1.0x)
	// for the given cost-multiplier table index.
	CostMultiplierX100(idx int) int64
	// RadiusCells returns the interaction radius, in cells, for a
	// design-rule subset and shape type at the given design-rule set.
	RadiusCells(ruleSet, subset int, shape geometry.ShapeType) (radius int, ok bool)
}
