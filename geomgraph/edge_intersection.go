package geomgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/twpayne/go-geom"
)

// EdgeIntersection is a point where an edge is intersected, located by the
// index of the segment containing it and its distance along that segment.
type EdgeIntersection struct {
	Coord        geom.Coord
	SegmentIndex int
	Dist         float64
}

// Compare orders intersections along their edge. Intersections at the same
// position are ordered by coordinate.
func (ei *EdgeIntersection) Compare(o *EdgeIntersection) int {
	return ei.compare(o.SegmentIndex, o.Dist, o.Coord)
}

func (ei *EdgeIntersection) compare(segmentIndex int, dist float64, pt geom.Coord) int {
	switch {
	case ei.SegmentIndex < segmentIndex:
		return -1
	case ei.SegmentIndex > segmentIndex:
		return 1
	case ei.Dist < dist:
		return -1
	case ei.Dist > dist:
		return 1
	}
	return compareCoords(ei.Coord, pt)
}

// IsEndPoint checks if the intersection is at the start or end of its edge.
func (ei *EdgeIntersection) IsEndPoint(maxSegmentIndex int) bool {
	return (ei.SegmentIndex == 0 && ei.Dist == 0) || ei.SegmentIndex == maxSegmentIndex
}

func (ei *EdgeIntersection) String() string {
	return fmt.Sprintf("%s seg # = %d dist = %v", formatCoord(ei.Coord), ei.SegmentIndex, ei.Dist)
}

// EdgeIntersectionList is the sorted set of intersections of a single edge.
// Adding an intersection that is already present has no effect.
type EdgeIntersectionList struct {
	edge *Edge
	list []*EdgeIntersection
}

func newEdgeIntersectionList(e *Edge) *EdgeIntersectionList {
	return &EdgeIntersectionList{edge: e}
}

func (l *EdgeIntersectionList) Len() int { return len(l.list) }

// Intersections gives the intersections in order along the edge.
func (l *EdgeIntersectionList) Intersections() []*EdgeIntersection {
	return l.list
}

// Add inserts an intersection. If an equal intersection already exists, it
// is returned and nothing is added.
func (l *EdgeIntersectionList) Add(pt geom.Coord, segmentIndex int, dist float64) *EdgeIntersection {
	i := sort.Search(len(l.list), func(i int) bool {
		return l.list[i].compare(segmentIndex, dist, pt) >= 0
	})
	if i < len(l.list) && l.list[i].compare(segmentIndex, dist, pt) == 0 {
		return l.list[i]
	}
	ei := &EdgeIntersection{Coord: pt, SegmentIndex: segmentIndex, Dist: dist}
	l.list = append(l.list, nil)
	copy(l.list[i+1:], l.list[i:])
	l.list[i] = ei
	return ei
}

// IsIntersection checks if pt is one of the recorded intersections.
func (l *EdgeIntersectionList) IsIntersection(pt geom.Coord) bool {
	for _, ei := range l.list {
		if equals2D(ei.Coord, pt) {
			return true
		}
	}
	return false
}

// AddEndpoints adds the first and last points of the edge as intersections.
func (l *EdgeIntersectionList) AddEndpoints() {
	maxSegIndex := len(l.edge.pts) - 1
	l.Add(copyCoord(l.edge.pts[0]), 0, 0)
	l.Add(copyCoord(l.edge.pts[maxSegIndex]), maxSegIndex, 0)
}

// AddSplitEdges creates a new edge for each pair of consecutive
// intersections (including the endpoints of the edge), and adds them to
// edges.
func (l *EdgeIntersectionList) AddSplitEdges(edges *EdgeList) {
	l.AddEndpoints()
	for i := 1; i < len(l.list); i++ {
		edges.Add(l.CreateSplitEdge(l.list[i-1], l.list[i]))
	}
}

// CreateSplitEdge creates the edge running from ei0 to ei1. The new edge has
// a copy of the parent's label.
func (l *EdgeIntersectionList) CreateSplitEdge(ei0, ei1 *EdgeIntersection) *Edge {
	pts := l.edge.pts
	npts := ei1.SegmentIndex - ei0.SegmentIndex + 2

	// The second intersection is only needed if it's distinct from the start
	// of its segment.
	lastSegStartPt := pts[ei1.SegmentIndex]
	useIntPt1 := ei1.Dist > 0 || !equals2D(ei1.Coord, lastSegStartPt)
	if !useIntPt1 {
		npts--
	}

	splitPts := make([]geom.Coord, 0, npts)
	splitPts = append(splitPts, copyCoord(ei0.Coord))
	for i := ei0.SegmentIndex + 1; i <= ei1.SegmentIndex; i++ {
		splitPts = append(splitPts, copyCoord(pts[i]))
	}
	if useIntPt1 {
		splitPts = append(splitPts, copyCoord(ei1.Coord))
	}
	return NewEdge(splitPts, l.edge.label.Clone())
}

func (l *EdgeIntersectionList) String() string {
	var sb strings.Builder
	sb.WriteString("Intersections:\n")
	for _, ei := range l.list {
		sb.WriteString(ei.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
