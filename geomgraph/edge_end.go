package geomgraph

import (
	"fmt"
	"math"

	"github.com/twpayne/go-geom"
)

// Ender is implemented by EdgeEnd and by the types that embed it, so that
// they can be held by an EdgeEndStar. Types that derive their label from
// other edge ends override ComputeLabel.
type Ender interface {
	End() *EdgeEnd
	ComputeLabel(rule BoundaryNodeRule)
}

// EdgeEnd is a ray leaving a node along the first segment of an edge (or the
// last segment, for edges leaving from their last point). Edge ends are
// totally ordered by the angle of their direction.
type EdgeEnd struct {
	edge     *Edge
	label    *Label
	node     *Node
	p0, p1   geom.Coord
	dx, dy   float64
	quadrant Quadrant
}

// NewEdgeEnd creates an edge end for edge, leaving p0 in the direction of p1.
// The points must not be equal.
func NewEdgeEnd(edge *Edge, p0, p1 geom.Coord, lbl *Label) *EdgeEnd {
	ee := &EdgeEnd{edge: edge, label: lbl}
	ee.init(p0, p1)
	return ee
}

func (ee *EdgeEnd) init(p0, p1 geom.Coord) {
	ee.p0 = p0
	ee.p1 = p1
	ee.dx = p1[0] - p0[0]
	ee.dy = p1[1] - p0[1]
	assertf(ee.dx != 0 || ee.dy != 0, "EdgeEnd with identical endpoints found at ( %v %v )", p0[0], p0[1])
	ee.quadrant = QuadrantOf(ee.dx, ee.dy)
}

func (ee *EdgeEnd) End() *EdgeEnd { return ee }

func (ee *EdgeEnd) Edge() *Edge     { return ee.edge }
func (ee *EdgeEnd) Label() *Label   { return ee.label }
func (ee *EdgeEnd) Node() *Node     { return ee.node }
func (ee *EdgeEnd) SetNode(n *Node) { ee.node = n }

// Coordinate is the origin of the edge end.
func (ee *EdgeEnd) Coordinate() geom.Coord { return ee.p0 }

// DirectedCoordinate is the point that the edge end heads towards.
func (ee *EdgeEnd) DirectedCoordinate() geom.Coord { return ee.p1 }

func (ee *EdgeEnd) Quadrant() Quadrant { return ee.quadrant }
func (ee *EdgeEnd) Dx() float64        { return ee.dx }
func (ee *EdgeEnd) Dy() float64        { return ee.dy }

// CompareDirection orders edge ends counter-clockwise by direction, starting
// from the positive X axis. It gives 0 for edge ends that point in the same
// direction.
//
// Angles are never computed. Quadrants are compared first, and edge ends in
// the same quadrant are ordered using a robust orientation test.
func (ee *EdgeEnd) CompareDirection(o *EdgeEnd) int {
	if ee.dx == o.dx && ee.dy == o.dy {
		return 0
	}
	switch {
	case ee.quadrant > o.quadrant:
		return 1
	case ee.quadrant < o.quadrant:
		return -1
	}
	return orientationIndex(o.p0, o.p1, ee.p1)
}

// ComputeLabel is a hook for edge ends that derive their label from other
// edge ends. A plain edge end's label is fixed at construction.
func (ee *EdgeEnd) ComputeLabel(rule BoundaryNodeRule) {}

func (ee *EdgeEnd) String() string {
	angle := math.Atan2(ee.dy, ee.dx)
	var name string
	if ee.edge != nil {
		name = ee.edge.name
	}
	return fmt.Sprintf("  %s: %s - %s %d:%v   %v",
		name, formatCoord(ee.p0), formatCoord(ee.p1), int(ee.quadrant), angle, ee.label)
}
