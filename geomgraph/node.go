package geomgraph

import (
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/location"
)

// Node is a point in a planar graph where edges meet (or an isolated point).
// A node has a star of incident edge ends, unless it was created by a factory
// that doesn't track them.
type Node struct {
	GraphComponent
	coord geom.Coord
	star  Star
}

// NewNode creates a node at coord. The star may be nil.
func NewNode(coord geom.Coord, star Star) *Node {
	n := &Node{coord: coord, star: star}
	n.label = NewGeomLabel(0, location.None)
	return n
}

func (n *Node) Coordinate() geom.Coord { return n.coord }
func (n *Node) Star() Star             { return n.star }

// DirectedEdgeStar gives the node's star, which must be a DirectedEdgeStar.
func (n *Node) DirectedEdgeStar() *DirectedEdgeStar {
	des, ok := n.star.(*DirectedEdgeStar)
	assertf(ok, "node at %s does not have a DirectedEdgeStar", formatCoord(n.coord))
	return des
}

// Add inserts an edge end into the node's star.
func (n *Node) Add(e Ender) {
	assertf(n.star != nil, "node at %s has no star", formatCoord(n.coord))
	n.star.Insert(e)
	e.End().SetNode(n)
}

// IsIncidentEdgeInResult checks if any edge incident on the node is in the
// result.
func (n *Node) IsIncidentEdgeInResult() bool {
	if n.star == nil {
		return false
	}
	for _, e := range n.star.Ends() {
		if e.End().Edge().IsInResult() {
			return true
		}
	}
	return false
}

// IsIsolated is true if the node is only labelled for one geometry.
func (n *Node) IsIsolated() bool {
	return n.label.GeometryCount() == 1
}

// ComputeIM is a no-op. Nodes contribute to an intersection matrix through
// their incident edges.
func (n *Node) ComputeIM(*IntersectionMatrix) {}

// MergeLabel merges the locations of another node into this one. Only
// locations that are unknown in this node's label are changed.
func (n *Node) MergeLabel(other *Node) {
	n.MergeLabelFrom(other.label)
}

// MergeLabelFrom is like MergeLabel, but merges from a label directly.
func (n *Node) MergeLabelFrom(lbl *Label) {
	for gi := 0; gi < 2; gi++ {
		loc := n.computeMergedLocation(lbl, gi)
		if n.label.Location(gi) == location.None {
			n.label.SetLocation(gi, loc)
		}
	}
}

// computeMergedLocation gives the location that results from merging other
// into the node's label. A boundary location is never overridden.
func (n *Node) computeMergedLocation(other *Label, geomIndex int) location.Type {
	loc := n.label.Location(geomIndex)
	if !other.IsNull(geomIndex) {
		if otherLoc := other.Location(geomIndex); loc != location.Boundary {
			loc = otherLoc
		}
	}
	return loc
}

// SetLabelAt sets the On location of the node for a geometry.
func (n *Node) SetLabelAt(geomIndex int, onLocation location.Type) {
	if n.label == nil {
		n.label = NewGeomLabel(geomIndex, onLocation)
		return
	}
	n.label.SetLocation(geomIndex, onLocation)
}

// SetLabelBoundary records that the node is the endpoint of one more
// linear component. It toggles the node between boundary and interior, as
// per the mod-2 rule.
func (n *Node) SetLabelBoundary(geomIndex int) {
	if n.label == nil {
		return
	}
	newLoc := location.Boundary
	if n.label.Location(geomIndex) == location.Boundary {
		newLoc = location.Interior
	}
	n.label.SetLocation(geomIndex, newLoc)
}

func (n *Node) String() string {
	return fmt.Sprintf("node %s lbl: %v", formatCoord(n.coord), n.label)
}

// NodeFactory creates the nodes of a planar graph.
type NodeFactory interface {
	CreateNode(coord geom.Coord) *Node
}

// BasicNodeFactory creates nodes without stars. It's used by graphs that
// only track node locations.
type BasicNodeFactory struct{}

func (BasicNodeFactory) CreateNode(coord geom.Coord) *Node {
	return NewNode(coord, nil)
}

// DirectedEdgeNodeFactory creates nodes with a DirectedEdgeStar.
type DirectedEdgeNodeFactory struct{}

func (DirectedEdgeNodeFactory) CreateNode(coord geom.Coord) *Node {
	return NewNode(coord, NewDirectedEdgeStar())
}

// EdgeEndNodeFactory creates nodes with a plain EdgeEndStar.
type EdgeEndNodeFactory struct{}

func (EdgeEndNodeFactory) CreateNode(coord geom.Coord) *Node {
	return NewNode(coord, NewEdgeEndStar())
}
