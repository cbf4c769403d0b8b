package geomgraph

import (
	"github.com/twpayne/go-geom"
)

// SegmentIntersector computes the intersection of pairs of segments from
// edges, and records any non-trivial intersections in the edges.
type SegmentIntersector struct {
	li             LineIntersector
	includeProper  bool
	recordIsolated bool

	hasIntersection         bool
	hasProper               bool
	hasProperInterior       bool
	properIntersectionPoint geom.Coord

	numIntersections int
	numTests         int

	bdyNodes            *[2][]*Node
	isDone              bool
	isDoneWhenProperInt bool
}

// NewSegmentIntersector creates a segment intersector. Proper intersections
// are only recorded in the edges if includeProper is set. If recordIsolated
// is set, intersecting edges are marked as not isolated.
func NewSegmentIntersector(li LineIntersector, includeProper, recordIsolated bool) *SegmentIntersector {
	return &SegmentIntersector{
		li:             li,
		includeProper:  includeProper,
		recordIsolated: recordIsolated,
	}
}

// SetBoundaryNodes sets the boundary nodes of the two geometries. A proper
// intersection at a boundary node isn't considered to be in the interior.
func (si *SegmentIntersector) SetBoundaryNodes(bdyNodes0, bdyNodes1 []*Node) {
	si.bdyNodes = &[2][]*Node{bdyNodes0, bdyNodes1}
}

// SetIsDoneIfProperInt makes the intersector report that it's done as soon
// as a proper intersection is found.
func (si *SegmentIntersector) SetIsDoneIfProperInt(b bool) { si.isDoneWhenProperInt = b }

func (si *SegmentIntersector) IsDone() bool                        { return si.isDone }
func (si *SegmentIntersector) HasIntersection() bool               { return si.hasIntersection }
func (si *SegmentIntersector) HasProperIntersection() bool         { return si.hasProper }
func (si *SegmentIntersector) HasProperInteriorIntersection() bool { return si.hasProperInterior }
func (si *SegmentIntersector) NumIntersections() int               { return si.numIntersections }
func (si *SegmentIntersector) NumTests() int                       { return si.numTests }

// ProperIntersectionPoint is the last proper intersection found, or nil if
// there hasn't been one.
func (si *SegmentIntersector) ProperIntersectionPoint() geom.Coord {
	return si.properIntersectionPoint
}

func isAdjacentSegments(i1, i2 int) bool {
	return i1-i2 == 1 || i2-i1 == 1
}

// isTrivialIntersection checks if an intersection is only due to segments
// of the same edge sharing a vertex: either they're adjacent, or they're
// the first and last segments of a closed edge.
func (si *SegmentIntersector) isTrivialIntersection(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) bool {
	if e0 != e1 || si.li.IntersectionNum() != 1 {
		return false
	}
	if isAdjacentSegments(segIndex0, segIndex1) {
		return true
	}
	if e0.IsClosed() {
		maxSegIndex := e0.NumPoints() - 2
		if (segIndex0 == 0 && segIndex1 == maxSegIndex) ||
			(segIndex1 == 0 && segIndex0 == maxSegIndex) {
			return true
		}
	}
	return false
}

// AddIntersections intersects a segment of e0 with a segment of e1. Any
// non-trivial intersection is recorded in both edges, except that proper
// intersections are only recorded if they are included.
func (si *SegmentIntersector) AddIntersections(e0 *Edge, segIndex0 int, e1 *Edge, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	si.numTests++
	p00, p01 := e0.pts[segIndex0], e0.pts[segIndex0+1]
	p10, p11 := e1.pts[segIndex1], e1.pts[segIndex1+1]
	si.li.ComputeIntersection(p00, p01, p10, p11)
	if !si.li.HasIntersection() {
		return
	}

	if si.recordIsolated {
		e0.SetIsolated(false)
		e1.SetIsolated(false)
	}
	si.numIntersections++
	if si.isTrivialIntersection(e0, segIndex0, e1, segIndex1) {
		return
	}

	si.hasIntersection = true
	if si.includeProper || !si.li.IsProper() {
		e0.AddIntersections(si.li, segIndex0, 0)
		e1.AddIntersections(si.li, segIndex1, 1)
	}
	if si.li.IsProper() {
		si.properIntersectionPoint = copyCoord(si.li.Intersection(0))
		si.hasProper = true
		if si.isDoneWhenProperInt {
			si.isDone = true
		}
		if !si.isBoundaryPoint() {
			si.hasProperInterior = true
		}
	}
}

func (si *SegmentIntersector) isBoundaryPoint() bool {
	if si.bdyNodes == nil {
		return false
	}
	for _, nodes := range si.bdyNodes {
		for _, n := range nodes {
			if si.li.IsIntersection(n.coord) {
				return true
			}
		}
	}
	return false
}
