package geomgraph

import (
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersection"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// LineIntersector computes the intersection of two line segments. The graph
// treats it as a black box that classifies intersections exactly.
type LineIntersector interface {
	// ComputeIntersection computes the intersection of segments p1-p2 and
	// q1-q2. The results are available until the next call.
	ComputeIntersection(p1, p2, q1, q2 geom.Coord)

	HasIntersection() bool

	// IntersectionNum is 0 (no intersection), 1 (a point intersection) or 2
	// (the segments are collinear and overlap).
	IntersectionNum() int

	Intersection(intIndex int) geom.Coord

	// EdgeDistance gives the distance of an intersection point along one of
	// the input segments (0 for p1-p2, 1 for q1-q2). It's only meaningful for
	// ordering points along a single segment.
	EdgeDistance(segmentIndex, intIndex int) float64

	// IsProper is true if the segments intersect at a single point that is
	// in the interior of both segments.
	IsProper() bool

	IsIntersection(pt geom.Coord) bool
}

// RobustLineIntersector is a LineIntersector backed by go-geom's robust
// segment intersection.
type RobustLineIntersector struct {
	inputLines [2][2]geom.Coord
	pts        []geom.Coord
	proper     bool
}

func NewRobustLineIntersector() *RobustLineIntersector {
	return new(RobustLineIntersector)
}

func (li *RobustLineIntersector) ComputeIntersection(p1, p2, q1, q2 geom.Coord) {
	li.inputLines = [2][2]geom.Coord{{p1, p2}, {q1, q2}}
	li.pts = li.pts[:0]
	li.proper = false

	result := lineintersector.LineIntersectsLine(lineintersector.RobustLineIntersector{}, p1, p2, q1, q2)
	for _, pt := range result.Intersection() {
		li.pts = append(li.pts, geom.Coord{pt[0], pt[1]})
	}
	if result.Type() == lineintersection.PointIntersection {
		pt := li.pts[0]
		li.proper = !equals2D(pt, p1) && !equals2D(pt, p2) &&
			!equals2D(pt, q1) && !equals2D(pt, q2)
	}
}

func (li *RobustLineIntersector) HasIntersection() bool { return len(li.pts) > 0 }
func (li *RobustLineIntersector) IntersectionNum() int  { return len(li.pts) }
func (li *RobustLineIntersector) IsProper() bool        { return li.proper }

func (li *RobustLineIntersector) Intersection(intIndex int) geom.Coord {
	return li.pts[intIndex]
}

func (li *RobustLineIntersector) IsIntersection(pt geom.Coord) bool {
	for _, p := range li.pts {
		if equals2D(p, pt) {
			return true
		}
	}
	return false
}

func (li *RobustLineIntersector) EdgeDistance(segmentIndex, intIndex int) float64 {
	seg := li.inputLines[segmentIndex]
	return edgeDistance(li.pts[intIndex], seg[0], seg[1])
}

// edgeDistance gives a distance of p along p0-p1 that preserves the ordering
// of points on the segment. It's measured along the axis with the larger
// extent, which keeps it exact for axis aligned segments.
func edgeDistance(p, p0, p1 geom.Coord) float64 {
	dx := math.Abs(p1[0] - p0[0])
	dy := math.Abs(p1[1] - p0[1])
	switch {
	case equals2D(p, p0):
		return 0
	case equals2D(p, p1):
		return math.Max(dx, dy)
	}
	pdx := math.Abs(p[0] - p0[0])
	pdy := math.Abs(p[1] - p0[1])
	dist := pdy
	if dx > dy {
		dist = pdx
	}
	if dist == 0 {
		dist = math.Max(pdx, pdy)
	}
	assertf(dist != 0, "bad distance calculation for ( %v %v )", p[0], p[1])
	return dist
}
