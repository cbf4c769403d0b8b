package geomgraph

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// Edge is an undirected polyline in a planar graph. Its coordinates are
// never modified after construction. Splitting an edge at its intersections
// produces new edges.
type Edge struct {
	GraphComponent

	pts        []geom.Coord
	env        *geom.Bounds
	eiList     *EdgeIntersectionList
	name       string
	isolated   bool
	depth      *Depth
	depthDelta int
}

// NewEdge creates an edge with the given coordinates and label. The edge
// takes ownership of the coordinates.
func NewEdge(pts []geom.Coord, lbl *Label) *Edge {
	e := &Edge{
		pts:      pts,
		isolated: true,
		depth:    NewDepth(),
	}
	e.label = lbl
	e.eiList = newEdgeIntersectionList(e)
	return e
}

func (e *Edge) Coordinates() []geom.Coord   { return e.pts }
func (e *Edge) Coordinate(i int) geom.Coord { return e.pts[i] }
func (e *Edge) NumPoints() int              { return len(e.pts) }

// MaximumSegmentIndex is the index of the last segment's start point.
func (e *Edge) MaximumSegmentIndex() int { return len(e.pts) - 1 }

// Envelope is the bounding box of the edge's points.
func (e *Edge) Envelope() *geom.Bounds {
	if e.env == nil {
		flat := make([]float64, 0, 2*len(e.pts))
		for _, p := range e.pts {
			flat = append(flat, p[0], p[1])
		}
		e.env = geom.NewBounds(geom.XY).Extend(geom.NewLineStringFlat(geom.XY, flat))
	}
	return e.env
}

func (e *Edge) Name() string        { return e.name }
func (e *Edge) SetName(name string) { e.name = name }

func (e *Edge) EdgeIntersectionList() *EdgeIntersectionList { return e.eiList }

func (e *Edge) Depth() *Depth { return e.depth }

// DepthDelta is the depth on the left of the edge minus the depth on its
// right.
func (e *Edge) DepthDelta() int         { return e.depthDelta }
func (e *Edge) SetDepthDelta(delta int) { e.depthDelta = delta }

func (e *Edge) IsIsolated() bool   { return e.isolated }
func (e *Edge) SetIsolated(b bool) { e.isolated = b }

// IsClosed checks if the first and last points are equal.
func (e *Edge) IsClosed() bool {
	return equals2D(e.pts[0], e.pts[len(e.pts)-1])
}

// IsCollapsed is true for area edges that have collapsed to a zero width
// spike, i.e. have exactly 3 points with the first equal to the last.
func (e *Edge) IsCollapsed() bool {
	if !e.label.IsArea() {
		return false
	}
	return len(e.pts) == 3 && equals2D(e.pts[0], e.pts[2])
}

// CollapsedEdge gives the line edge that a collapsed edge represents.
func (e *Edge) CollapsedEdge() *Edge {
	pts := []geom.Coord{e.pts[0], e.pts[1]}
	return NewEdge(pts, ToLineLabel(e.label))
}

// AddIntersections records each intersection found by li in the edge.
// segmentIndex is the index of the edge's segment that was intersected, and
// geomIndex selects which of li's two input segments belonged to this edge.
func (e *Edge) AddIntersections(li LineIntersector, segmentIndex, geomIndex int) {
	for i := 0; i < li.IntersectionNum(); i++ {
		e.AddIntersection(li, segmentIndex, geomIndex, i)
	}
}

// AddIntersection records a single intersection found by li in the edge.
//
// Intersections that land exactly on a vertex are always attributed to the
// segment starting at that vertex, so that the same point is recorded
// identically regardless of which of its two segments reported it.
func (e *Edge) AddIntersection(li LineIntersector, segmentIndex, geomIndex, intIndex int) *EdgeIntersection {
	intPt := copyCoord(li.Intersection(intIndex))
	normalizedSegmentIndex := segmentIndex
	dist := li.EdgeDistance(geomIndex, intIndex)

	if next := normalizedSegmentIndex + 1; next < len(e.pts) {
		if equals2D(intPt, e.pts[next]) {
			normalizedSegmentIndex = next
			dist = 0
		}
	}
	return e.eiList.Add(intPt, normalizedSegmentIndex, dist)
}

// ComputeIM adds the edge's contribution to an intersection matrix.
func (e *Edge) ComputeIM(im *IntersectionMatrix) {
	updateEdgeIM(e.label, im)
}

func updateEdgeIM(lbl *Label, im *IntersectionMatrix) {
	im.SetAtLeastIfValid(lbl.LocationAt(0, On), lbl.LocationAt(1, On), DimCurve)
	if lbl.IsArea() {
		im.SetAtLeastIfValid(lbl.LocationAt(0, Left), lbl.LocationAt(1, Left), DimSurface)
		im.SetAtLeastIfValid(lbl.LocationAt(0, Right), lbl.LocationAt(1, Right), DimSurface)
	}
}

// Equal checks if two edges have the same points, in either the same or
// reverse order.
func (e *Edge) Equal(o *Edge) bool {
	if len(e.pts) != len(o.pts) {
		return false
	}
	fwd, rev := true, true
	n := len(e.pts)
	for i := range e.pts {
		if !equals2D(e.pts[i], o.pts[i]) {
			fwd = false
		}
		if !equals2D(e.pts[i], o.pts[n-1-i]) {
			rev = false
		}
		if !fwd && !rev {
			return false
		}
	}
	return true
}

// IsPointwiseEqual checks if two edges have the same points in the same
// order.
func (e *Edge) IsPointwiseEqual(o *Edge) bool {
	if len(e.pts) != len(o.pts) {
		return false
	}
	for i := range e.pts {
		if !equals2D(e.pts[i], o.pts[i]) {
			return false
		}
	}
	return true
}

// String renders the edge (for debugging purposes).
func (e *Edge) String() string {
	return fmt.Sprintf("edge %s: %s  %v %d", e.name, formatLineString(e.pts), e.label, e.depthDelta)
}

// ReverseString renders the edge with its points reversed.
func (e *Edge) ReverseString() string {
	rev := make([]geom.Coord, len(e.pts))
	for i, p := range e.pts {
		rev[len(rev)-1-i] = p
	}
	return fmt.Sprintf("edge %s: %s  %v %d", e.name, formatLineString(rev), e.label, e.depthDelta)
}
