package geomgraph

import (
	"fmt"

	"github.com/twpayne/go-geom/xy/location"
)

// unsetDepth marks a directed edge side depth that hasn't been computed.
const unsetDepth = -999

// EdgeRing is implemented by the ring builders that claim directed edges.
type EdgeRing interface {
	IsHole() bool
}

// DirectedEdge is one of the two directions of travel along an edge. The two
// directed edges of an edge are created together, and each is the Sym of the
// other.
//
// A directed edge holds its own copy of the edge's label, flipped for the
// reverse direction, since the labels of the two directions are computed
// separately at each end of the edge before being merged.
type DirectedEdge struct {
	EdgeEnd

	forward  bool
	inResult bool
	visited  bool

	sym         *DirectedEdge
	next        *DirectedEdge
	nextMin     *DirectedEdge
	edgeRing    EdgeRing
	minEdgeRing EdgeRing

	// The depth of each side (indexed by Left and Right).
	depth [3]int
}

// NewDirectedEdge creates a directed edge for an edge. Forward directed edges
// leave the edge's first point, and reverse directed edges leave its last
// point.
func NewDirectedEdge(edge *Edge, forward bool) *DirectedEdge {
	de := &DirectedEdge{
		forward: forward,
		depth:   [3]int{0, unsetDepth, unsetDepth},
	}
	de.edge = edge
	if forward {
		de.init(edge.Coordinate(0), edge.Coordinate(1))
	} else {
		n := edge.NumPoints() - 1
		de.init(edge.Coordinate(n), edge.Coordinate(n-1))
	}
	de.computeDirectedLabel()
	return de
}

// NewDirectedEdgePair creates both directed edges for an edge, linked as each
// other's Sym.
func NewDirectedEdgePair(edge *Edge) (*DirectedEdge, *DirectedEdge) {
	fwd := NewDirectedEdge(edge, true)
	rev := NewDirectedEdge(edge, false)
	fwd.sym = rev
	rev.sym = fwd
	return fwd, rev
}

func (de *DirectedEdge) computeDirectedLabel() {
	de.label = de.edge.Label().Clone()
	if !de.forward {
		de.label.Flip()
	}
}

// DepthFactor gives the change in depth when moving from the current location
// to the next: +1 when entering the interior, -1 when leaving it.
func DepthFactor(currLocation, nextLocation location.Type) int {
	switch {
	case currLocation == location.Exterior && nextLocation == location.Interior:
		return 1
	case currLocation == location.Interior && nextLocation == location.Exterior:
		return -1
	}
	return 0
}

func (de *DirectedEdge) IsForward() bool  { return de.forward }
func (de *DirectedEdge) IsInResult() bool { return de.inResult }
func (de *DirectedEdge) IsVisited() bool  { return de.visited }

func (de *DirectedEdge) SetInResult(b bool) { de.inResult = b }
func (de *DirectedEdge) SetVisited(b bool)  { de.visited = b }

// SetVisitedEdge marks both directions of the edge.
func (de *DirectedEdge) SetVisitedEdge(b bool) {
	de.visited = b
	de.sym.visited = b
}

func (de *DirectedEdge) Sym() *DirectedEdge         { return de.sym }
func (de *DirectedEdge) SetSym(sym *DirectedEdge)   { de.sym = sym }
func (de *DirectedEdge) Next() *DirectedEdge        { return de.next }
func (de *DirectedEdge) SetNext(next *DirectedEdge) { de.next = next }
func (de *DirectedEdge) NextMin() *DirectedEdge     { return de.nextMin }
func (de *DirectedEdge) SetNextMin(n *DirectedEdge) { de.nextMin = n }
func (de *DirectedEdge) EdgeRing() EdgeRing         { return de.edgeRing }
func (de *DirectedEdge) SetEdgeRing(r EdgeRing)     { de.edgeRing = r }
func (de *DirectedEdge) MinEdgeRing() EdgeRing      { return de.minEdgeRing }
func (de *DirectedEdge) SetMinEdgeRing(r EdgeRing)  { de.minEdgeRing = r }

// Depth gives the depth of one side of the directed edge.
func (de *DirectedEdge) Depth(pos Position) int {
	return de.depth[pos]
}

// SetDepth sets the depth of one side. Depths can only be assigned once; a
// conflicting reassignment is a topology error.
func (de *DirectedEdge) SetDepth(pos Position, depth int) error {
	if de.depth[pos] != unsetDepth && de.depth[pos] != depth {
		return newTopologyError(de.p0, "assigned depths do not match")
	}
	de.depth[pos] = depth
	return nil
}

// DepthDelta is the depth on the left of the directed edge minus the depth
// on its right.
func (de *DirectedEdge) DepthDelta() int {
	delta := de.edge.DepthDelta()
	if !de.forward {
		delta = -delta
	}
	return delta
}

// SetEdgeDepths sets the depth of one side, and derives the depth of the
// other side from the edge's depth delta.
func (de *DirectedEdge) SetEdgeDepths(pos Position, depth int) error {
	directionFactor := 1
	if pos == Left {
		directionFactor = -1
	}
	oppositeDepth := depth + de.DepthDelta()*directionFactor
	if err := de.SetDepth(pos, depth); err != nil {
		return err
	}
	return de.SetDepth(pos.Opposite(), oppositeDepth)
}

// IsLineEdge is true if the edge is a line edge for at least one geometry,
// and in the exterior of any geometry that it's an area edge for.
func (de *DirectedEdge) IsLineEdge() bool {
	isLine := de.label.IsLine(0) || de.label.IsLine(1)
	isExteriorIfArea0 := !de.label.IsGeomArea(0) || de.label.AllPositionsEqual(0, location.Exterior)
	isExteriorIfArea1 := !de.label.IsGeomArea(1) || de.label.AllPositionsEqual(1, location.Exterior)
	return isLine && isExteriorIfArea0 && isExteriorIfArea1
}

// IsInteriorAreaEdge is true if both sides of the edge are in the interior of
// both geometries. Such edges don't form part of a result boundary.
func (de *DirectedEdge) IsInteriorAreaEdge() bool {
	for i := 0; i < 2; i++ {
		if !(de.label.IsGeomArea(i) &&
			de.label.LocationAt(i, Left) == location.Interior &&
			de.label.LocationAt(i, Right) == location.Interior) {
			return false
		}
	}
	return true
}

func (de *DirectedEdge) String() string {
	s := fmt.Sprintf("%s %d/%d (%d)", de.EdgeEnd.String(), de.depth[Left], de.depth[Right], de.DepthDelta())
	if de.inResult {
		s += " inResult"
	}
	return s
}

// EdgeString renders the underlying edge in the direction of travel.
func (de *DirectedEdge) EdgeString() string {
	if de.forward {
		return de.edge.String()
	}
	return de.edge.ReverseString()
}
